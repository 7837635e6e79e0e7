package emissions

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for emission calculations.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidInput indicates a non-positive distance or weight.
	// Shipment work is defined only for positive tonne-kilometers; the
	// engine rejects bad inputs rather than silently producing zero.
	ErrInvalidInput = constError("invalid shipment input")

	// ErrUnknownMode indicates a transport mode absent from the catalog.
	// This is a caller or configuration bug, not a user-data condition.
	ErrUnknownMode = constError("unknown transport mode")

	// ErrNoCandidates indicates a recommendation was requested with an
	// empty candidate mode set.
	ErrNoCandidates = constError("no candidate transport modes")
)
