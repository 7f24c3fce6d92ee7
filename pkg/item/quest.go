package item

import "github.com/dshills/logicfill/pkg/capability"

// questItems inverts tokenSequence for the single-instance reward items a
// Check.Quest marker can fix: pendants and sages. These slots are excluded
// from the general placement pool; the fill engine assigns them directly.
var questItems = map[capability.Token]Item{
	capability.PendantOfCourage: PendantCourage,
	capability.PendantOfWisdom:  PendantWisdom,
	capability.PendantOfPower:   PendantPower,
	capability.SageGulley:       SageGulley,
	capability.SageOren:         SageOren,
	capability.SageSeres:        SageSeres,
	capability.SageOsfala:       SageOsfala,
	capability.SageRosso:        SageRosso,
	capability.SageIrene:        SageIrene,
	capability.SageImpa:         SageImpa,
}

// QuestItemFor returns the fixed reward Item for a quest-slot token.
func QuestItemFor(tok capability.Token) (Item, bool) {
	it, ok := questItems[tok]
	return it, ok
}
