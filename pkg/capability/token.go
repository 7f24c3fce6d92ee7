package capability

import "fmt"

// Token is one fact a Progress can hold: owning an indexed copy of a
// progressive item, holding a specific dungeon key, or having triggered a
// one-time world event. Indexed variants (Bow01/Bow02, EasternKeySmall01/02)
// exist because the fill algorithm places items one at a time and needs a
// distinct token per copy to avoid placing the same token twice.
type Token int

const (
	none Token = iota

	Sword01
	Sword02
	Sword03
	Sword04

	Bow01
	Bow02
	Boomerang01
	Boomerang02
	Hookshot01
	Hookshot02
	Bombs01
	Bombs02
	FireRod01
	FireRod02
	IceRod01
	IceRod02
	Hammer01
	Hammer02
	SandRod01
	SandRod02
	TornadoRod01
	TornadoRod02
	Lamp01
	Lamp02

	// Net has its own indexed tokens rather than aliasing Lamp; see
	// DESIGN.md's Open Question log.
	Net01
	Net02

	Glove01
	Glove02
	RaviosBracelet01
	RaviosBracelet02

	Flippers
	PegasusBoots
	Bell
	StaminaScroll
	ScootFruit
	EscapeFruit
	SmoothGem
	LetterInABottle
	PremiumMilk
	GoldBee
	GreatSpin
	BowOfLight

	Bottle01
	Bottle02
	Bottle03
	Bottle04
	Bottle05

	OreYellow
	OreGreen
	OreBlue
	OreRed

	// Maiamai-upgrade counter. Settings.NiceBombsCountsMaiamai gates
	// whether has_nice_bombs also accepts this, together with one bomb
	// token, in place of both bomb tokens; see DESIGN.md.
	MaiamaiUpgrade

	HyruleSanctuaryKey
	LoruleSanctuaryKey

	EasternKeySmall01
	EasternKeySmall02
	EasternKeyBig

	GalesKeySmall01
	GalesKeySmall02
	GalesKeySmall03
	GalesKeySmall04
	GalesKeyBig

	HeraKeySmall01
	HeraKeySmall02
	HeraKeyBig

	DarkKeySmall01
	DarkKeySmall02
	DarkKeySmall03
	DarkKeySmall04
	DarkKeyBig

	SwampKeySmall01
	SwampKeySmall02
	SwampKeySmall03
	SwampKeySmall04
	SwampKeyBig

	SkullKeySmall01
	SkullKeySmall02
	SkullKeySmall03
	SkullKeyBig

	ThievesKeySmall
	ThievesKeyBig

	IceKeySmall01
	IceKeySmall02
	IceKeySmall03
	IceKeyBig

	DesertKeySmall01
	DesertKeySmall02
	DesertKeySmall03
	DesertKeySmall04
	DesertKeySmall05
	DesertKeyBig

	TurtleKeySmall01
	TurtleKeySmall02
	TurtleKeySmall03
	TurtleKeyBig

	LoruleCastleKeySmall01
	LoruleCastleKeySmall02
	LoruleCastleKeySmall03
	LoruleCastleKeySmall04
	LoruleCastleKeySmall05

	PendantOfCourage
	PendantOfWisdom
	PendantOfPower

	SageGulley
	SageOren
	SageSeres
	SageOsfala
	SageRosso
	SageIrene
	SageImpa

	StylishWomansHouseOpen
	SkullEyeLeft
	SkullEyeRight
	BigBombFlower
	AccessHildaBarrier

	count
)

var names = map[Token]string{
	none: "None",

	Sword01: "Sword01", Sword02: "Sword02", Sword03: "Sword03", Sword04: "Sword04",
	Bow01: "Bow01", Bow02: "Bow02",
	Boomerang01: "Boomerang01", Boomerang02: "Boomerang02",
	Hookshot01: "Hookshot01", Hookshot02: "Hookshot02",
	Bombs01: "Bombs01", Bombs02: "Bombs02",
	FireRod01: "FireRod01", FireRod02: "FireRod02",
	IceRod01: "IceRod01", IceRod02: "IceRod02",
	Hammer01: "Hammer01", Hammer02: "Hammer02",
	SandRod01: "SandRod01", SandRod02: "SandRod02",
	TornadoRod01: "TornadoRod01", TornadoRod02: "TornadoRod02",
	Lamp01: "Lamp01", Lamp02: "Lamp02",
	Net01: "Net01", Net02: "Net02",
	Glove01: "Glove01", Glove02: "Glove02",
	RaviosBracelet01: "RaviosBracelet01", RaviosBracelet02: "RaviosBracelet02",
	Flippers:        "Flippers",
	PegasusBoots:    "PegasusBoots",
	Bell:            "Bell",
	StaminaScroll:   "StaminaScroll",
	ScootFruit:      "ScootFruit",
	EscapeFruit:     "EscapeFruit",
	SmoothGem:       "SmoothGem",
	LetterInABottle: "LetterInABottle",
	PremiumMilk:     "PremiumMilk",
	GoldBee:         "GoldBee",
	GreatSpin:       "GreatSpin",
	BowOfLight:      "BowOfLight",

	Bottle01: "Bottle01", Bottle02: "Bottle02", Bottle03: "Bottle03", Bottle04: "Bottle04", Bottle05: "Bottle05",

	OreYellow: "OreYellow", OreGreen: "OreGreen", OreBlue: "OreBlue", OreRed: "OreRed",

	MaiamaiUpgrade: "MaiamaiUpgrade",

	HyruleSanctuaryKey: "HyruleSanctuaryKey",
	LoruleSanctuaryKey: "LoruleSanctuaryKey",

	EasternKeySmall01: "EasternKeySmall01", EasternKeySmall02: "EasternKeySmall02", EasternKeyBig: "EasternKeyBig",
	GalesKeySmall01: "GalesKeySmall01", GalesKeySmall02: "GalesKeySmall02", GalesKeySmall03: "GalesKeySmall03", GalesKeySmall04: "GalesKeySmall04", GalesKeyBig: "GalesKeyBig",
	HeraKeySmall01: "HeraKeySmall01", HeraKeySmall02: "HeraKeySmall02", HeraKeyBig: "HeraKeyBig",
	DarkKeySmall01: "DarkKeySmall01", DarkKeySmall02: "DarkKeySmall02", DarkKeySmall03: "DarkKeySmall03", DarkKeySmall04: "DarkKeySmall04", DarkKeyBig: "DarkKeyBig",
	SwampKeySmall01: "SwampKeySmall01", SwampKeySmall02: "SwampKeySmall02", SwampKeySmall03: "SwampKeySmall03", SwampKeySmall04: "SwampKeySmall04", SwampKeyBig: "SwampKeyBig",
	SkullKeySmall01: "SkullKeySmall01", SkullKeySmall02: "SkullKeySmall02", SkullKeySmall03: "SkullKeySmall03", SkullKeyBig: "SkullKeyBig",
	ThievesKeySmall: "ThievesKeySmall", ThievesKeyBig: "ThievesKeyBig",
	IceKeySmall01: "IceKeySmall01", IceKeySmall02: "IceKeySmall02", IceKeySmall03: "IceKeySmall03", IceKeyBig: "IceKeyBig",
	DesertKeySmall01: "DesertKeySmall01", DesertKeySmall02: "DesertKeySmall02", DesertKeySmall03: "DesertKeySmall03", DesertKeySmall04: "DesertKeySmall04", DesertKeySmall05: "DesertKeySmall05", DesertKeyBig: "DesertKeyBig",
	TurtleKeySmall01: "TurtleKeySmall01", TurtleKeySmall02: "TurtleKeySmall02", TurtleKeySmall03: "TurtleKeySmall03", TurtleKeyBig: "TurtleKeyBig",
	LoruleCastleKeySmall01: "LoruleCastleKeySmall01", LoruleCastleKeySmall02: "LoruleCastleKeySmall02", LoruleCastleKeySmall03: "LoruleCastleKeySmall03", LoruleCastleKeySmall04: "LoruleCastleKeySmall04", LoruleCastleKeySmall05: "LoruleCastleKeySmall05",

	PendantOfCourage: "PendantOfCourage", PendantOfWisdom: "PendantOfWisdom", PendantOfPower: "PendantOfPower",

	SageGulley: "SageGulley", SageOren: "SageOren", SageSeres: "SageSeres", SageOsfala: "SageOsfala",
	SageRosso: "SageRosso", SageIrene: "SageIrene", SageImpa: "SageImpa",

	StylishWomansHouseOpen: "StylishWomansHouseOpen",
	SkullEyeLeft:           "SkullEyeLeft",
	SkullEyeRight:          "SkullEyeRight",
	BigBombFlower:          "BigBombFlower",
	AccessHildaBarrier:     "AccessHildaBarrier",
}

func (t Token) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// KeyRing holds one dungeon's key token families (Small and Big). Rings
// are keyed by dungeon name, the Region string Subregion.Dungeon returns,
// so the fill engine can look up the right indexed tokens without a giant
// switch at each call site.
type KeyRing struct {
	Small    []Token
	Big      Token
	Sanctum  Token // HyruleSanctuaryKey / LoruleSanctuaryKey style standalone key; zero value if unused.
}
