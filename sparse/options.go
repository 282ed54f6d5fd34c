// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Options fields are unexported; constructors consume ...Option.
//
// Numeric policy:
//   - validateNaNInf (default on) makes SetEntry reject NaN and ±Inf.
//     With it off, a NaN is stored like any other non-zero value, since
//     NaN == 0 is false. That mode exists to reproduce unvalidated ingestion.
//   - The policy is per instance. Clone and every algebra result inherit
//     the policy of the receiver (the left operand).
package sparse

// DefaultValidateNaNInf toggles strict finite-value validation in SetEntry.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation: SetEntry stores NaN
// and ±Inf as ordinary non-zero entries.
//
// Notes:
//   - Equal never reports a matrix holding NaN as equal to anything,
//     including itself, because comparison is exact.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves opts into an Options snapshot. Useful for callers that
// forward the same configuration to several constructors.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
