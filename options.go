// SPDX-License-Identifier: MIT
// Package domirank: solver configuration.
//
// Options follow the functional-options pattern; DefaultOptions() gives
// the canonical defaults and With* setters override individual knobs.
// Validation happens once, inside DomiRank, never in the setters.

package domirank

// Default parameter values for DomiRank.
const (
	// DefaultSigma is the default competition level, expressed as a
	// fraction of the valid range [0, 1/|λmin|).
	DefaultSigma = 0.95

	// DefaultDt is the default integration step size.
	DefaultDt = 0.1

	// DefaultEpsilon is the default convergence tolerance.
	DefaultEpsilon = 1e-5

	// DefaultMaxIter is the default iteration budget.
	DefaultMaxIter = 1000

	// DefaultCheckStep is the default sampling interval, in steps,
	// between convergence/divergence checks.
	DefaultCheckStep = 10
)

// largeGraphThreshold is the vertex count above which the analytical
// dense solve becomes expensive and an advisory warning is emitted.
const largeGraphThreshold = 5000

// Options configures a DomiRank computation.
type Options struct {
	// Analytical selects the closed-form sparse solve instead of the
	// iterative integrator. Default: false (iterative).
	Analytical bool

	// Sigma is the competition level as a fraction of the valid range;
	// the solver rescales it by 1/|λmin| internally. Must be ≥ 0, and
	// ≤ 1 in iterative mode. Default: DefaultSigma.
	Sigma float64

	// Dt is the explicit-Euler step size, required in (0, 1].
	// Default: DefaultDt.
	Dt float64

	// Epsilon is the convergence tolerance; the iterator stops once the
	// total update magnitude falls below Epsilon·N·Dt. Must be ≥ 0.
	// Default: DefaultEpsilon.
	Epsilon float64

	// MaxIter caps the number of integration steps. The spectral search
	// reuses one fifth of this budget as its bisection depth.
	// Default: DefaultMaxIter.
	MaxIter int

	// CheckStep is the sampling interval between convergence and
	// divergence checks. Required: 5 ≤ CheckStep ≤ MaxIter.
	// Default: DefaultCheckStep.
	CheckStep int
}

// Option adjusts Options.
type Option func(*Options)

// DefaultOptions returns the canonical solver defaults.
func DefaultOptions() Options {
	return Options{
		Analytical: false,
		Sigma:      DefaultSigma,
		Dt:         DefaultDt,
		Epsilon:    DefaultEpsilon,
		MaxIter:    DefaultMaxIter,
		CheckStep:  DefaultCheckStep,
	}
}

// WithAnalytical selects the closed-form sparse solve; the result's
// Converged field reports NotApplicable in this mode.
func WithAnalytical() Option {
	return func(o *Options) { o.Analytical = true }
}

// WithSigma sets the competition level.
func WithSigma(sigma float64) Option {
	return func(o *Options) { o.Sigma = sigma }
}

// WithDt sets the integration step size.
func WithDt(dt float64) Option {
	return func(o *Options) { o.Dt = dt }
}

// WithEpsilon sets the convergence tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIter sets the iteration budget.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithCheckStep sets the sampling interval between checks.
func WithCheckStep(n int) Option {
	return func(o *Options) { o.CheckStep = n }
}
