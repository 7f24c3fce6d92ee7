package item

import "github.com/dshills/logicfill/pkg/capability"

// tokenSequence lists, for a canonical (post-Normalize) Item, the ordered
// capability tokens successive placed copies grant: the first copy placed
// gets the first token, the second copy the second, and so on. Items with
// no entry here grant no capability (either because no predicate consults
// them yet, or because they are dungeon-scoped and handled separately by
// the fill engine via a per-dungeon key ring).
var tokenSequence = map[Item][]capability.Token{
	SwordL2:    {capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04},
	Bow:        {capability.Bow01, capability.Bow02},
	Bombs:      {capability.Bombs01, capability.Bombs02},
	FireRod:    {capability.FireRod01, capability.FireRod02},
	IceRod:     {capability.IceRod01, capability.IceRod02},
	Hammer:     {capability.Hammer01, capability.Hammer02},
	Hookshot:   {capability.Hookshot01, capability.Hookshot02},
	Boomerang:  {capability.Boomerang01, capability.Boomerang02},
	SandRod:    {capability.SandRod01, capability.SandRod02},
	TornadoRod: {capability.TornadoRod01, capability.TornadoRod02},
	Net:        {capability.Net01, capability.Net02},
	Lamp:       {capability.Lamp01, capability.Lamp02},
	Bracelet:   {capability.RaviosBracelet01, capability.RaviosBracelet02},
	Glove:      {capability.Glove01, capability.Glove02},

	Flippers: {capability.Flippers},
	Boots:    {capability.PegasusBoots},
	Bottle:   {capability.Bottle01, capability.Bottle02, capability.Bottle03, capability.Bottle04, capability.Bottle05},

	Bell: {capability.Bell},

	OreYellow: {capability.OreYellow},
	OreGreen:  {capability.OreGreen},
	OreBlue:   {capability.OreBlue},
	OreRed:    {capability.OreRed},

	PremiumMilk:     {capability.PremiumMilk},
	GreatSpin:       {capability.GreatSpin},
	BowOfLight:      {capability.BowOfLight},
	StaminaScroll:   {capability.StaminaScroll},
	SmoothGem:       {capability.SmoothGem},
	GoldBee:         {capability.GoldBee},
	LetterInABottle: {capability.LetterInABottle},
	ScootFruit:      {capability.ScootFruit},
	EscapeFruit:     {capability.EscapeFruit},

	PendantCourage: {capability.PendantOfCourage},
	PendantWisdom:  {capability.PendantOfWisdom},
	PendantPower:   {capability.PendantOfPower},

	SageGulley: {capability.SageGulley},
	SageOren:   {capability.SageOren},
	SageSeres:  {capability.SageSeres},
	SageOsfala: {capability.SageOsfala},
	SageRosso:  {capability.SageRosso},
	SageIrene:  {capability.SageIrene},
	SageImpa:   {capability.SageImpa},
}

// TokenAt returns the capability token the instance-th copy (0-indexed) of
// this Item, after normalization, grants, and whether one exists. Callers
// track the instance count per canonical Item as they place copies.
func (it Item) TokenAt(instance int) (capability.Token, bool) {
	seq := tokenSequence[it.Normalize()]
	if instance < 0 || instance >= len(seq) {
		return 0, false
	}
	return seq[instance], true
}
