package world

import (
	"github.com/dshills/logicfill/pkg/logic"
	"github.com/dshills/logicfill/pkg/progress"
)

// Path is a directed edge from the containing LocationNode to Target,
// guarded by Logic. Paths reference Subregions rather than LocationNodes
// directly so the graph stays an arena-plus-key structure instead of a
// web of pointer cycles.
type Path struct {
	Target Subregion
	Logic  logic.Logic
}

// CanTraverse reports whether this Path is open under the given Progress.
func (p Path) CanTraverse(prog *progress.Progress) bool {
	return p.Logic.CanAccess(prog)
}
