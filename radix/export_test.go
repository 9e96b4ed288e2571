package radix

// SetMaxExponent lowers the digit count limit and returns a function that
// restores it.
func SetMaxExponent(n int) (restore func()) {
	prev := maxExponent
	maxExponent = n

	return func() {
		maxExponent = prev
	}
}
