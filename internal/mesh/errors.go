package mesh

import "errors"

// Sentinel errors shared by every builder. Callers match them with errors.Is; builders wrap
// them with the offending value.
var (
	// ErrInvalidParameter reports a malformed or out-of-range numeric input. It is always
	// returned before any buffer is allocated.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnsupportedShapeType reports a shape or silhouette name outside the known set.
	ErrUnsupportedShapeType = errors.New("unsupported shape type")
	// ErrUnsupportedCarrierType reports a relief carrier outside the known set.
	ErrUnsupportedCarrierType = errors.New("unsupported carrier type")
)
