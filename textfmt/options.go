// SPDX-License-Identifier: MIT

package textfmt

import "github.com/katalvlaran/lvsparse/sparse"

// DefaultLenientValues keeps strict value parsing on by default.
const DefaultLenientValues = false

// Option configures Parse.
type Option func(*Options)

// Options holds the resolved parser configuration.
type Options struct {
	lenient bool
	sparse  []sparse.Option
}

// WithLenientValues turns an unparseable value token into NaN instead of an
// error, and builds both matrices with sparse.WithNoValidateNaNInf so the NaN
// is stored. Index tokens and line counts are still validated.
func WithLenientValues() Option {
	return func(o *Options) { o.lenient = true }
}

// WithSparseOptions forwards options to sparse.NewSparse for both matrices.
// They are applied after the policy implied by WithLenientValues.
func WithSparseOptions(opts ...sparse.Option) Option {
	return func(o *Options) { o.sparse = append(o.sparse, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{lenient: DefaultLenientValues}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// matrixOptions returns the sparse options used for both parsed matrices.
func (o Options) matrixOptions() []sparse.Option {
	out := make([]sparse.Option, 0, len(o.sparse)+1)
	if o.lenient {
		out = append(out, sparse.WithNoValidateNaNInf())
	}

	return append(out, o.sparse...)
}
