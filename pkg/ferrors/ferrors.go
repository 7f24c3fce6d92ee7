package ferrors

import "errors"

// NoValidPlacement means the fill ran out of candidate Checks for an item.
// The caller may retry the fill with a bumped seed.
var NoValidPlacement = errors.New("no valid placement")

// InvariantViolation means the Location Table itself is inconsistent
// (duplicate Check name, dangling Path target). Fatal; the caller should
// abort rather than retry.
var InvariantViolation = errors.New("invariant violation")

// PatcherError wraps a failure forwarded from the Patcher. Fatal for the
// run.
var PatcherError = errors.New("patcher error")

// IO covers failures reading the source image or writing the artifact.
var IO = errors.New("io error")
