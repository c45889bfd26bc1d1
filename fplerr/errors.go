// Package fplerr defines the sentinel error kinds shared across the floorplanning
// core (block, contour, bstar, seqpair, evaluate, anneal, result).
//
// Policy, matching the rest of this codebase:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never built from formatted strings; call sites that need
//     extra context wrap with fmt.Errorf("...: %w", ErrX).
//   - No panics on malformed input; validation failures are always returned,
//     never logged or swallowed.
package fplerr

import "errors"

var (
	// ErrInvalidInput indicates a structural problem with caller-supplied data
	// (missing required field, wrong shape) discovered at a component boundary.
	ErrInvalidInput = errors.New("fplerr: invalid input")

	// ErrEmptyBlockSet indicates a catalog or representation was built from zero blocks.
	ErrEmptyBlockSet = errors.New("fplerr: empty block set")

	// ErrUnknownBlock indicates a reference to a block name not present in the catalog.
	ErrUnknownBlock = errors.New("fplerr: unknown block")

	// ErrMalformedVariant indicates a variant with a non-positive or non-finite dimension.
	ErrMalformedVariant = errors.New("fplerr: malformed variant")

	// ErrDecodeFailure indicates a representation could not be decoded into a valid
	// placement (numerical degeneracy, inconsistent state). Fatal at construction time;
	// demoted to an infinite-fitness rejection when raised by a candidate mid-SA.
	ErrDecodeFailure = errors.New("fplerr: decode failure")

	// ErrCanceled indicates the SA driver observed cancellation via its context.
	// Not fatal: the driver still returns the current best snapshot, flagged Canceled.
	ErrCanceled = errors.New("fplerr: canceled")
)
