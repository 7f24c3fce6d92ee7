package world

import (
	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/logic"
	"github.com/dshills/logicfill/pkg/patch"
	"github.com/dshills/logicfill/pkg/progress"
)

// Check is a single item slot. Name is stable and unique within its
// containing region. Quest, when non-nil, fixes this Check's reward
// (a sage or pendant token) and excludes it from general placement.
type Check struct {
	Name  string
	Logic logic.Logic
	Quest *capability.Token
	Patch patch.Descriptor
}

// CanAccess reports whether this Check is open under the given Progress,
// delegating to its Logic.
func (c Check) CanAccess(p *progress.Progress) bool {
	return c.Logic.CanAccess(p)
}
