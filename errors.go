package numbers

import "github.com/taurr/numbers-fun/internal/failure"

var (
	// InvalidArgument is returned for a step that is not positive or a
	// tolerance that is negative.
	InvalidArgument = &failure.InvalidArgument

	// Overflow is returned when a ULP walk cannot leave its current value.
	Overflow = &failure.Overflow
)
