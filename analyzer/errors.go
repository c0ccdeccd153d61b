package analyzer

import "errors"

// ErrInternal labels inconsistencies between the search and the
// evaluators (a distance below the valid floor, or no decomposition for a
// non-empty hand). These indicate a bug, not bad input, and are surfaced
// so a host can report them instead of corrupting state.
var ErrInternal = errors.New("analyzer: internal inconsistency")
