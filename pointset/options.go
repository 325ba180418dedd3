// SPDX-License-Identifier: MIT

package pointset

// DefaultUnique keeps duplicate points (the index moves to the newest copy).
const DefaultUnique = false

// Option configures a PointSet.
type Option func(*Options)

// Options holds the resolved configuration of a PointSet.
type Options struct {
	unique bool
}

func defaultOptions() Options {
	return Options{unique: DefaultUnique}
}

// WithUnique drops a point on insert when an equal point is already stored.
func WithUnique() Option {
	return func(o *Options) { o.unique = true }
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
