// SPDX-License-Identifier: MIT

package cadio

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/lvgeom"
	"github.com/katalvlaran/lvgeom/point"
)

// Segment is a straight 2D segment between two points.
type Segment [2]point.Point2d

// WriteDXF writes points and segments to a DXF drawing at path.
// Points are drawn as small circles (WithPointRadius).
func WriteDXF(path string, pts []point.Point2d, segs []Segment, opts ...Option) error {
	o := gatherOptions(opts...)
	d := render.NewDXF(path)
	for _, s := range segs {
		d.Line(&sdf.Line2{Point2ToV2(s[0]), Point2ToV2(s[1])})
	}
	if len(pts) > 0 {
		set := make(v2.VecSet, len(pts))
		for i, p := range pts {
			set[i] = Point2ToV2(p)
		}
		d.Points(set, o.pointRadius)
	}
	if err := d.Save(); err != nil {
		return cadioErrorf(opWriteDXF, err)
	}
	lvgeom.Logger().Debug("cadio: dxf written", "path", path, "points", len(pts), "segments", len(segs))
	return nil
}
