package capability

import (
	"fmt"
	"testing"
)

func TestStringOnKnownTokens(t *testing.T) {
	cases := map[Token]string{
		Bow01:      "Bow01",
		Glove02:    "Glove02",
		BowOfLight: "BowOfLight",
	}
	for tok, want := range cases {
		if got := tok.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(tok), got, want)
		}
	}
}

func TestStringOnUnknownTokenFallsBackToNumeric(t *testing.T) {
	unknown := count + 1
	want := fmt.Sprintf("Token(%d)", int(unknown))
	if got := unknown.String(); got != want {
		t.Errorf("String() on an out-of-range token = %q, want %q", got, want)
	}
}

func TestEveryDeclaredTokenHasAName(t *testing.T) {
	for tok := Token(1); tok < count; tok++ {
		if tok.String() == "" {
			t.Errorf("token %d has an empty String()", int(tok))
		}
		if _, ok := names[tok]; !ok {
			t.Errorf("token %d (declared before the count sentinel) has no entry in names", int(tok))
		}
	}
}
