package sketch

import (
	"github.com/bendavis78/corne-case/fault"
	"github.com/bendavis78/corne-case/internal/d2"
	"github.com/deadsy/sdfx/sdf"
)

// Face converts a closed profile into a kernel face.
func Face(p Profile) (sdf.SDF2, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s, err := sdf.Polygon2D(d2.Set(p.Simplify().Vertices()).V2())
	if err != nil {
		return nil, fault.Wrap(fault.DegenerateProfile, "face", err)
	}
	return s, nil
}
