// SPDX-License-Identifier: MIT

package cadio

import "math"

// DefaultPointRadius is the circle radius used to mark points in DXF output.
const DefaultPointRadius = 0.5

const panicRadiusInvalid = "cadio: WithPointRadius: radius must be finite, > 0"

// Option configures WriteDXF.
type Option func(*Options)

// Options holds the resolved WriteDXF configuration.
type Options struct {
	pointRadius float64
}

// WithPointRadius sets the marker radius for points. Panics unless r is finite and > 0.
func WithPointRadius(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		panic(panicRadiusInvalid)
	}
	return func(o *Options) { o.pointRadius = r }
}

func gatherOptions(opts ...Option) Options {
	o := Options{pointRadius: DefaultPointRadius}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
