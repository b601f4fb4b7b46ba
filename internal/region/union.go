// Package region combines input polygons into a minimal set of disjoint
// regions (exterior ring plus hole rings) via iterative pairwise polygon
// boolean union.
package region

import (
	polyclip "github.com/ctessum/polyclip-go"

	"github.com/piwi3910/TileCover/internal/geom"
	"github.com/piwi3910/TileCover/internal/model"
)

// Clipper performs a boolean union on two contour sets. It exists so the
// union algorithm depends on a contract rather than a concrete clipping
// library; any implementation that supports holes and disjoint multi-polygon
// output can stand in. A nil or empty result signals total cancellation.
type Clipper interface {
	Union(subject, clip []model.Ring) []model.Ring
}

// vattiClipper implements Clipper with the polyclip-go Vatti sweep.
type vattiClipper struct{}

// DefaultClipper is the clipper used by the package-level functions.
var DefaultClipper Clipper = vattiClipper{}

func (vattiClipper) Union(subject, clip []model.Ring) []model.Ring {
	result := toPolyclip(subject).Construct(polyclip.UNION, toPolyclip(clip))
	return fromPolyclip(result)
}

func toPolyclip(rings []model.Ring) polyclip.Polygon {
	poly := make(polyclip.Polygon, 0, len(rings))
	for _, ring := range rings {
		contour := make(polyclip.Contour, len(ring))
		for i, p := range ring {
			contour[i] = polyclip.Point{X: p.X, Y: p.Y}
		}
		poly = append(poly, contour)
	}
	return poly
}

func fromPolyclip(poly polyclip.Polygon) []model.Ring {
	var rings []model.Ring
	for _, contour := range poly {
		if len(contour) < 3 {
			continue
		}
		ring := make(model.Ring, len(contour))
		for i, p := range contour {
			ring[i] = model.Point2D{X: p.X, Y: p.Y}
		}
		rings = append(rings, ring)
	}
	return rings
}

// UnionPolygons combines the input polygons into disjoint regions using the
// default clipper. Zero polygons yield no regions; a single polygon becomes a
// hole-less region without invoking the clipper at all.
func UnionPolygons(polygons []model.Ring) []model.Region {
	return UnionPolygonsWith(DefaultClipper, polygons)
}

// UnionPolygonsWith is UnionPolygons with an explicit clipper.
//
// Polygons are folded pairwise in input order. An empty intermediate result
// means total cancellation, which is not a supported outcome: it propagates
// upward as "no coverable area" rather than an error.
func UnionPolygonsWith(c Clipper, polygons []model.Ring) []model.Region {
	valid := make([]model.Ring, 0, len(polygons))
	for _, p := range polygons {
		if len(p) >= 3 {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	if len(valid) == 1 {
		return []model.Region{{Exterior: valid[0]}}
	}

	acc := []model.Ring{valid[0].Closed()}
	for _, p := range valid[1:] {
		acc = c.Union(acc, []model.Ring{p.Closed()})
		if len(acc) == 0 {
			return nil
		}
	}
	return classifyRings(acc)
}

// classifyRings disambiguates the clipper's output contours into regions.
// Clipping libraries guarantee neither orientation nor ordering of their
// output rings, so classification goes by geometry alone: when no contour is
// nested inside another, each is its own hole-less region. Otherwise the
// output is one region whose exterior is the ring of largest unsigned area;
// the exterior is by construction never smaller than any nested hole.
func classifyRings(rings []model.Ring) []model.Region {
	if len(rings) == 0 {
		return nil
	}
	if len(rings) == 1 {
		return []model.Region{{Exterior: rings[0]}}
	}

	nested := false
	for i, inner := range rings {
		for j, outer := range rings {
			if i == j || len(inner) == 0 {
				continue
			}
			if geom.PointInRing(inner[0].X, inner[0].Y, outer) {
				nested = true
				break
			}
		}
		if nested {
			break
		}
	}

	if !nested {
		regions := make([]model.Region, 0, len(rings))
		for _, r := range rings {
			regions = append(regions, model.Region{Exterior: r})
		}
		return regions
	}

	largest := 0
	for i, r := range rings {
		if r.Area() > rings[largest].Area() {
			largest = i
		}
	}
	region := model.Region{Exterior: rings[largest]}
	for i, r := range rings {
		if i != largest {
			region.Holes = append(region.Holes, r)
		}
	}
	return []model.Region{region}
}

// UnionArea returns the net area of the unioned polygons: for each region,
// the exterior area minus the hole areas, clamped to zero.
func UnionArea(polygons []model.Ring) float64 {
	total := 0.0
	for _, reg := range UnionPolygons(polygons) {
		total += reg.Area()
	}
	return total
}
