// Package failure holds the error classes shared by the stepping packages.
package failure

import "github.com/zeebo/errs"

var (
	// InvalidArgument is the class of precondition violations: a step that is
	// not positive, a negative tolerance, a NaN where a number is required.
	InvalidArgument = errs.Class("invalid argument")

	// Overflow is the class of errors for stepping past the largest finite
	// value, or stepping from a value that is not finite.
	Overflow = errs.Class("overflow")
)
