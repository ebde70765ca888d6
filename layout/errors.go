package layout

import "fmt"

// InvalidNodeError is the one error kind the solver surfaces (spec §4.7,
// §7): the tree accessor rejected a handle, e.g. because it is stale or
// detached. All other anomalies (NaN, infinities, flex-resolution edge
// cases) are coerced rather than surfaced — an algorithmic invariant
// violation is a bug in the solver, not a caller-visible error.
type InvalidNodeError struct {
	Node NodeID
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("taffy: invalid input node %d", e.Node)
}
