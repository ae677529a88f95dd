package ridge

// Option is a function that configures Ridge
type Option func(*Ridge)

// WithCondTol sets the condition-number threshold above which the
// regularized Gram matrix is treated as numerically singular.
func WithCondTol(tol float64) Option {
	return func(r *Ridge) {
		r.condTol = tol
	}
}
