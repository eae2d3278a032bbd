package numbers

// Iterator is a lazy, restartable sequence.
type Iterator[T any] interface {
	// Next returns the next value and true, or false once the sequence is
	// exhausted or has failed.
	Next() (T, bool)

	// Err returns the error that ended the sequence, if any.
	Err() error

	// Reset rewinds the sequence to its first value.
	Reset()
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) (out []T, err error) {
	for {
		v, ok := it.Next()
		if !ok {
			return out, it.Err()
		}
		out = append(out, v)
	}
}

// Do calls fn with each value of it until fn returns false or the sequence
// ends.
func Do[T any](it Iterator[T], fn func(T) bool) error {
	for {
		v, ok := it.Next()
		if !ok {
			return it.Err()
		}
		if !fn(v) {
			return nil
		}
	}
}
