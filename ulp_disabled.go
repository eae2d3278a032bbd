//go:build noulp

package numbers

// ULPEnabled reports whether the ULP strategy is compiled in.
const ULPEnabled = false
