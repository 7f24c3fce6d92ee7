package progress

import (
	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/settings"
)

// Progress is the unordered set of capability tokens the hypothetical
// player holds. Insertion is the only mutation during a fill pass; tokens
// are never removed.
type Progress struct {
	tokens   map[capability.Token]bool
	settings *settings.Settings
}

// New returns a Progress bound to the given settings profile, seeded with
// whatever that profile credits the player with from the start. Settings
// is also consulted by queries that read Settings-gated knobs (the logic
// tier, NiceBombsCountsMaiamai) rather than only at construction time.
func New(s *settings.Settings) *Progress {
	p := &Progress{tokens: make(map[capability.Token]bool), settings: s}
	if s != nil && s.StartWithMerge {
		p.Add(capability.RaviosBracelet01)
	}
	return p
}

// Settings returns the settings profile this Progress was created with.
func (p *Progress) Settings() *settings.Settings {
	return p.settings
}

// Add inserts a token. Idempotent.
func (p *Progress) Add(t capability.Token) {
	p.tokens[t] = true
}

// Clone returns a deep copy sharing the same settings reference.
func (p *Progress) Clone() *Progress {
	c := New(p.settings)
	for t := range p.tokens {
		c.tokens[t] = true
	}
	return c
}

// Difference returns the tokens present in p but absent in other.
func (p *Progress) Difference(other *Progress) map[capability.Token]bool {
	out := make(map[capability.Token]bool)
	for t := range p.tokens {
		if !other.tokens[t] {
			out[t] = true
		}
	}
	return out
}

// Has reports whether a single token is held.
func (p *Progress) Has(t capability.Token) bool {
	return p.tokens[t]
}

// HasEither reports whether either token is held.
func (p *Progress) HasEither(a, b capability.Token) bool {
	return p.tokens[a] || p.tokens[b]
}

// HasBoth reports whether both tokens are held.
func (p *Progress) HasBoth(a, b capability.Token) bool {
	return p.tokens[a] && p.tokens[b]
}

// HasAny reports whether any of the given tokens are held.
func (p *Progress) HasAny(tokens ...capability.Token) bool {
	for _, t := range tokens {
		if p.tokens[t] {
			return true
		}
	}
	return false
}

// Count returns how many of the given tokens are held.
func (p *Progress) Count(tokens ...capability.Token) int {
	n := 0
	for _, t := range tokens {
		if p.tokens[t] {
			n++
		}
	}
	return n
}

// HasAmount reports whether at least amount of the given tokens are held.
func (p *Progress) HasAmount(amount int, tokens ...capability.Token) bool {
	return p.Count(tokens...) >= amount
}

// Equipment queries ----------------------------------------------------

func (p *Progress) HasBow() bool       { return p.HasEither(capability.Bow01, capability.Bow02) }
func (p *Progress) HasBoomerang() bool { return p.HasEither(capability.Boomerang01, capability.Boomerang02) }
func (p *Progress) HasHookshot() bool  { return p.HasEither(capability.Hookshot01, capability.Hookshot02) }
func (p *Progress) HasBombs() bool     { return p.HasEither(capability.Bombs01, capability.Bombs02) }

// HasNiceBombs requires both bomb upgrades, or a Maiamai bomb-bag upgrade
// when Settings.NiceBombsCountsMaiamai is set.
func (p *Progress) HasNiceBombs() bool {
	if p.HasBoth(capability.Bombs01, capability.Bombs02) {
		return true
	}
	return p.settings != nil && p.settings.NiceBombsCountsMaiamai &&
		p.HasBombs() && p.Has(capability.MaiamaiUpgrade)
}

func (p *Progress) HasFireRod() bool { return p.HasEither(capability.FireRod01, capability.FireRod02) }
func (p *Progress) HasIceRod() bool  { return p.HasEither(capability.IceRod01, capability.IceRod02) }
func (p *Progress) HasHammer() bool  { return p.HasEither(capability.Hammer01, capability.Hammer02) }
func (p *Progress) HasScootFruit() bool { return p.Has(capability.ScootFruit) }
func (p *Progress) HasLamp() bool    { return p.HasEither(capability.Lamp01, capability.Lamp02) }

func (p *Progress) HasFireSource() bool {
	return p.HasAny(capability.Lamp01, capability.Lamp02, capability.FireRod01, capability.FireRod02)
}

func (p *Progress) CanExtinguishTorches() bool {
	return p.HasAny(
		capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04,
		capability.Bombs01, capability.Bombs02,
		capability.IceRod01, capability.IceRod02,
		capability.TornadoRod01, capability.TornadoRod02,
	)
}

func (p *Progress) HasBell() bool { return p.Has(capability.Bell) }

// HasNet consults dedicated Net tokens rather than aliasing the lamp
// tokens; see DESIGN.md's Open Question log.
func (p *Progress) HasNet() bool { return p.HasEither(capability.Net01, capability.Net02) }

func (p *Progress) HasStaminaScroll() bool { return p.Has(capability.StaminaScroll) }

func (p *Progress) HasBottle() bool {
	return p.HasAny(capability.Bottle01, capability.Bottle02, capability.Bottle03, capability.Bottle04, capability.Bottle05)
}

func (p *Progress) HasSandRod() bool    { return p.HasEither(capability.SandRod01, capability.SandRod02) }
func (p *Progress) HasTornadoRod() bool { return p.HasEither(capability.TornadoRod01, capability.TornadoRod02) }
func (p *Progress) HasBoots() bool      { return p.Has(capability.PegasusBoots) }
func (p *Progress) HasPowerGlove() bool { return p.HasEither(capability.Glove01, capability.Glove02) }
func (p *Progress) HasTitansMitt() bool { return p.HasBoth(capability.Glove01, capability.Glove02) }
func (p *Progress) HasFlippers() bool   { return p.Has(capability.Flippers) }

// CanMerge requires either bracelet token; one bracelet is enough to
// merge.
func (p *Progress) CanMerge() bool {
	return p.HasEither(capability.RaviosBracelet01, capability.RaviosBracelet02)
}

// CanSwordClip reports whether a sword-swing animation cancel can clip the
// player through terrain that would otherwise require CanMerge, gated
// behind Settings.SwordClips so it only applies at logic tiers that opt
// into terrain-clipping tricks.
func (p *Progress) CanSwordClip() bool {
	return p.settings != nil && p.settings.SwordClips && p.HasSword()
}

func (p *Progress) HasMasterOre(amount int) bool {
	return p.HasAmount(amount, capability.OreRed, capability.OreGreen, capability.OreBlue, capability.OreYellow)
}

func (p *Progress) HasSmoothGem() bool      { return p.Has(capability.SmoothGem) }
func (p *Progress) HasLetterInABottle() bool { return p.Has(capability.LetterInABottle) }
func (p *Progress) HasPremiumMilk() bool    { return p.Has(capability.PremiumMilk) }
func (p *Progress) HasGoldBee() bool        { return p.Has(capability.GoldBee) }

func (p *Progress) HasSword() bool {
	return p.HasAny(capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04)
}

func (p *Progress) HasMasterSword() bool {
	return p.HasAmount(2, capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04)
}

func (p *Progress) HasGreatSpin() bool { return p.Has(capability.GreatSpin) }

func (p *Progress) CanAttack() bool {
	return p.HasAny(
		capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04,
		capability.Bow01, capability.Bow02,
		capability.Bombs01, capability.Bombs02,
		capability.FireRod01, capability.FireRod02,
		capability.Hammer01, capability.Hammer02,
	)
}

func (p *Progress) CanHitSwitch() bool {
	return p.HasAny(
		capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04,
		capability.Bow01, capability.Bow02,
		capability.Boomerang01, capability.Boomerang02,
		capability.Hookshot01, capability.Hookshot02,
		capability.Bombs01, capability.Bombs02,
		capability.IceRod01, capability.IceRod02,
		capability.Hammer01, capability.Hammer02,
	)
}

func (p *Progress) CanHitFarSwitch() bool {
	return p.HasAny(
		capability.Bow01, capability.Bow02,
		capability.Boomerang01, capability.Boomerang02,
		capability.Hookshot01, capability.Hookshot02,
		capability.Bombs01, capability.Bombs02,
	)
}

func (p *Progress) CanHitShieldedSwitch() bool {
	return p.HasAny(
		capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04,
		capability.Bow01, capability.Bow02,
		capability.Boomerang01, capability.Boomerang02,
		capability.Hookshot01, capability.Hookshot02,
		capability.Bombs01, capability.Bombs02,
		capability.Hammer01, capability.Hammer02,
	)
}

func (p *Progress) CanHitHog1FSwitch() bool {
	return p.CanHitFarSwitch() || p.HasIceRod() || (p.CanMerge() && (p.HasSword() || p.HasHammer()))
}

// Dungeon key/big-key queries -------------------------------------------

func (p *Progress) HasSanctuaryKey() bool       { return p.Has(capability.HyruleSanctuaryKey) }
func (p *Progress) HasLoruleSanctuaryKey() bool { return p.Has(capability.LoruleSanctuaryKey) }

func (p *Progress) HasEasternKeys(amount int) bool {
	return p.HasAmount(amount, capability.EasternKeySmall01, capability.EasternKeySmall02)
}
func (p *Progress) HasEasternBigKey() bool { return p.Has(capability.EasternKeyBig) }

func (p *Progress) HasGalesKeys(amount int) bool {
	return p.HasAmount(amount, capability.GalesKeySmall01, capability.GalesKeySmall02, capability.GalesKeySmall03, capability.GalesKeySmall04)
}
func (p *Progress) HasGalesBigKey() bool { return p.Has(capability.GalesKeyBig) }

func (p *Progress) HasHeraKeys(amount int) bool {
	return p.HasAmount(amount, capability.HeraKeySmall01, capability.HeraKeySmall02)
}
func (p *Progress) HasHeraBigKey() bool { return p.Has(capability.HeraKeyBig) }

func (p *Progress) HasDarkKeys(amount int) bool {
	return p.HasAmount(amount, capability.DarkKeySmall01, capability.DarkKeySmall02, capability.DarkKeySmall03, capability.DarkKeySmall04)
}
func (p *Progress) HasDarkBigKey() bool { return p.Has(capability.DarkKeyBig) }

func (p *Progress) HasSwampKeys(amount int) bool {
	return p.HasAmount(amount, capability.SwampKeySmall01, capability.SwampKeySmall02, capability.SwampKeySmall03, capability.SwampKeySmall04)
}
func (p *Progress) HasSwampBigKey() bool { return p.Has(capability.SwampKeyBig) }

func (p *Progress) HasSkullKeys(amount int) bool {
	return p.HasAmount(amount, capability.SkullKeySmall01, capability.SkullKeySmall02, capability.SkullKeySmall03)
}
func (p *Progress) HasSkullBigKey() bool { return p.Has(capability.SkullKeyBig) }

func (p *Progress) HasThievesKey() bool    { return p.Has(capability.ThievesKeySmall) }
func (p *Progress) HasThievesBigKey() bool { return p.Has(capability.ThievesKeyBig) }

func (p *Progress) HasIceKeys(amount int) bool {
	return p.HasAmount(amount, capability.IceKeySmall01, capability.IceKeySmall02, capability.IceKeySmall03)
}
func (p *Progress) HasIceBigKey() bool { return p.Has(capability.IceKeyBig) }

func (p *Progress) HasDesertKeys(amount int) bool {
	return p.HasAmount(amount,
		capability.DesertKeySmall01, capability.DesertKeySmall02, capability.DesertKeySmall03,
		capability.DesertKeySmall04, capability.DesertKeySmall05)
}
func (p *Progress) HasDesertBigKey() bool { return p.Has(capability.DesertKeyBig) }

func (p *Progress) HasTurtleKeys(amount int) bool {
	return p.HasAmount(amount, capability.TurtleKeySmall01, capability.TurtleKeySmall02, capability.TurtleKeySmall03)
}
func (p *Progress) HasTurtleBigKey() bool { return p.Has(capability.TurtleKeyBig) }

func (p *Progress) HasLoruleKeys(amount int) bool {
	return p.HasAmount(amount,
		capability.LoruleCastleKeySmall01, capability.LoruleCastleKeySmall02, capability.LoruleCastleKeySmall03,
		capability.LoruleCastleKeySmall04, capability.LoruleCastleKeySmall05)
}

// Boss predicates --------------------------------------------------------

func (p *Progress) CanDefeatYuga() bool {
	return p.HasBow() || p.HasBombs() || ((p.HasBoomerang() || p.HasHookshot()) && p.CanAttack())
}

func (p *Progress) CanDefeatMargomill() bool {
	return p.HasTornadoRod() && (p.HasSword() || p.HasBow() || p.HasBombs() || p.HasFireRod() || p.HasHammer())
}

func (p *Progress) CanDefeatMoldorm() bool { return p.HasHammer() }

func (p *Progress) CanDefeatGemasaur() bool { return p.HasBombs() && p.HasFireSource() }

func (p *Progress) CanDefeatArrgus() bool { return p.HasHookshot() && p.CanAttack() }

func (p *Progress) CanDefeatKnucklemaster() bool {
	return p.CanMerge() && (p.HasSword() || p.HasBombs() || p.HasFireRod() || p.HasIceRod() || p.HasHammer())
}

func (p *Progress) CanDefeatStalblind() bool { return p.CanMerge() && p.CanAttack() }

func (p *Progress) CanDefeatDharkstare() bool { return p.HasFireRod() }

func (p *Progress) CanDefeatZaganaga() bool { return p.HasSandRod() && p.CanAttack() }

func (p *Progress) CanDefeatGrinexx() bool { return p.HasIceRod() }

func (p *Progress) CanDefeatYuganon() bool {
	return p.CanAttack() && p.CanMerge() && p.Has(capability.BowOfLight)
}

// Event and quest queries -------------------------------------------------

func (p *Progress) HasOpenedStylishWomansHouse() bool { return p.Has(capability.StylishWomansHouseOpen) }
func (p *Progress) HasSkullEyeRight() bool            { return p.Has(capability.SkullEyeRight) }

func (p *Progress) HasSkullEyes() bool {
	return p.HasBoth(capability.SkullEyeLeft, capability.SkullEyeRight)
}

func (p *Progress) HasBombFlower() bool { return p.Has(capability.BigBombFlower) }

func (p *Progress) HasPendantOfCourage() bool { return p.Has(capability.PendantOfCourage) }

func (p *Progress) HasAllPendants() bool {
	return p.Has(capability.PendantOfCourage) && p.Has(capability.PendantOfWisdom) && p.Has(capability.PendantOfPower)
}

func (p *Progress) HasSageOsfala() bool { return p.Has(capability.SageOsfala) }

func (p *Progress) HasAllSages() bool {
	return p.Has(capability.SageGulley) && p.Has(capability.SageOren) && p.Has(capability.SageSeres) &&
		p.Has(capability.SageOsfala) && p.Has(capability.SageRosso) && p.Has(capability.SageIrene) &&
		p.Has(capability.SageImpa)
}

func (p *Progress) CanReachHildaBarrier() bool { return p.Has(capability.AccessHildaBarrier) }
