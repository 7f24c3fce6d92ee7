package logic

import (
	"testing"

	"github.com/dshills/logicfill/pkg/progress"
	"github.com/dshills/logicfill/pkg/settings"
)

func alwaysTrue(*progress.Progress) bool  { return true }
func alwaysFalse(*progress.Progress) bool { return false }

func TestCanAccessStopsAtConfiguredTier(t *testing.T) {
	l := Logic{
		Normal:      alwaysFalse,
		Hard:        alwaysTrue,
		GlitchBasic: alwaysTrue,
	}

	s := settings.Default()
	s.LogicMode = settings.Normal
	p := progress.New(s)
	if l.CanAccess(p) {
		t.Fatal("Normal tier should not see the Hard predicate")
	}

	s.LogicMode = settings.Hard
	if !l.CanAccess(p) {
		t.Fatal("Hard tier should satisfy via the Hard predicate")
	}
}

func TestNoLogicShortCircuits(t *testing.T) {
	l := Logic{Normal: alwaysFalse}
	s := settings.Default()
	s.LogicMode = settings.NoLogic
	p := progress.New(s)
	if !l.CanAccess(p) {
		t.Fatal("NoLogic should always grant access")
	}
}

func TestNilPredicatesAreSkipped(t *testing.T) {
	l := Logic{Hard: alwaysTrue}
	s := settings.Default()
	s.LogicMode = settings.Hard
	p := progress.New(s)
	if !l.CanAccess(p) {
		t.Fatal("a nil Normal predicate should not block a satisfied Hard predicate")
	}
}

func TestFreeIsOpenAtEveryTier(t *testing.T) {
	l := Free()
	for _, tier := range []settings.Tier{settings.Normal, settings.Hard, settings.GlitchBasic, settings.GlitchAdvanced, settings.GlitchHell} {
		s := settings.Default()
		s.LogicMode = tier
		p := progress.New(s)
		if !l.CanAccess(p) {
			t.Errorf("Free() should be accessible at tier %v", tier)
		}
	}
}
