package loop

// ForArgs calls f once for each of xs, in order.
func ForArgs[E any](f func(x E), xs ...E) {
	for _, x := range xs {
		f(x)
	}
}
