package logic

import (
	"github.com/dshills/logicfill/pkg/progress"
	"github.com/dshills/logicfill/pkg/settings"
)

// Predicate is a pure, deterministic access condition. It must not mutate
// the Progress it inspects.
type Predicate func(*progress.Progress) bool

// Logic is a record of five optional tier predicates. A nil predicate at a
// tier means that tier grants no access by itself.
type Logic struct {
	Normal         Predicate
	Hard           Predicate
	GlitchBasic    Predicate
	GlitchAdvanced Predicate
	GlitchHell     Predicate
}

// CanAccess evaluates the Logic against p under p's configured tier. It
// builds the predicate stack [Normal, ..., tier] and returns true on the
// first present predicate that evaluates true. NoLogic short-circuits to
// true without evaluating any predicate.
func (l Logic) CanAccess(p *progress.Progress) bool {
	tier := settings.Normal
	if s := p.Settings(); s != nil {
		tier = s.LogicMode
	}

	if tier == settings.NoLogic {
		return true
	}

	stack := []Predicate{l.Normal}
	if tier >= settings.Hard {
		stack = append(stack, l.Hard)
	}
	if tier >= settings.GlitchBasic {
		stack = append(stack, l.GlitchBasic)
	}
	if tier >= settings.GlitchAdvanced {
		stack = append(stack, l.GlitchAdvanced)
	}
	if tier >= settings.GlitchHell {
		stack = append(stack, l.GlitchHell)
	}

	for _, pred := range stack {
		if pred != nil && pred(p) {
			return true
		}
	}
	return false
}

// Accessible is a predicate that is always satisfied.
func Accessible(*progress.Progress) bool { return true }

// Free returns a Logic open at every tier, used for Checks and Paths with
// no access restriction (e.g. the designated start Subregion).
func Free() Logic {
	return Logic{
		Normal:         Accessible,
		Hard:           Accessible,
		GlitchBasic:    Accessible,
		GlitchAdvanced: Accessible,
		GlitchHell:     Accessible,
	}
}
