package surface

// Option configures a Surface at construction.
type Option func(*Surface)

// WithWorkers enables row-parallel compositing over at most n contiguous row bands.
// n <= 1 keeps every operation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(s *Surface) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}
