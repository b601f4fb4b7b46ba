package model

import (
	"math"

	"github.com/google/uuid"
)

// Point2D represents a 2D coordinate in world units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ring represents a closed polygon boundary as a sequence of 2D points.
// The ring is implicitly closed: the last point connects back to the first.
// A ring needs at least 3 points to enclose any area.
type Ring []Point2D

// BoundingBox returns the min and max corners of the ring.
func (r Ring) BoundingBox() (min, max Point2D) {
	if len(r) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: r[0].X, Y: r[0].Y}
	max = Point2D{X: r[0].X, Y: r[0].Y}
	for _, p := range r[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (r Ring) Translate(dx, dy float64) Ring {
	result := make(Ring, len(r))
	for i, p := range r {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// Area returns the unsigned area enclosed by the ring (shoelace formula).
// Orientation of the ring does not matter. Rings with fewer than 3 points
// have zero area.
func (r Ring) Area() float64 {
	if len(r) < 3 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(r); i++ {
		j := (i + 1) % len(r)
		total += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return math.Abs(total) / 2.0
}

// Closed returns the ring with the first vertex explicitly repeated as the
// last. Rings that are already closed are returned as-is.
func (r Ring) Closed() Ring {
	if len(r) < 3 {
		return r
	}
	if r[0] == r[len(r)-1] {
		return r
	}
	closed := make(Ring, len(r)+1)
	copy(closed, r)
	closed[len(r)] = r[0]
	return closed
}

// Region represents one connected coverable area: an exterior boundary ring
// plus zero or more hole rings fully contained in it. Ring orientation is
// irrelevant; all containment tests use the even-odd rule.
type Region struct {
	Exterior Ring   `json:"exterior"`
	Holes    []Ring `json:"holes,omitempty"`
}

// Area returns the net area of the region: exterior area minus the sum of
// hole areas, clamped to zero.
func (reg Region) Area() float64 {
	a := reg.Exterior.Area()
	for _, h := range reg.Holes {
		a -= h.Area()
	}
	if a < 0 {
		return 0
	}
	return a
}

// Zone is a named input polygon, the unit the importer and project layers
// traffic in. Overlapping zones are unioned before covering.
type Zone struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Ring  Ring   `json:"ring"`
}

func NewZone(label string, ring Ring) Zone {
	return Zone{
		ID:    uuid.New().String()[:8],
		Label: label,
		Ring:  ring,
	}
}

// Rings extracts the bare polygon rings from a zone list.
func Rings(zones []Zone) []Ring {
	rings := make([]Ring, 0, len(zones))
	for _, z := range zones {
		rings = append(rings, z.Ring)
	}
	return rings
}

// Square is a grid cell or merged block: top-left corner plus side length.
// Squares are owned exclusively by the covering engine during a run.
type Square struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// Rect generalizes Square for the rectangle shape mode and for consumers.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Rect converts the square to its rectangle form.
func (s Square) Rect() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.Size, H: s.Size}
}

// Circle is a placed circular panel in the circles shape mode.
type Circle struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

// CoveringStep is one snapshot of the in-progress covering, emitted once per
// merge event (or per productive circle pass). Remaining is reserved for
// uncovered leftover area and is always empty in the current algorithm, but
// stays part of the contract. Iteration starts at 0 and increments once per
// merge.
type CoveringStep struct {
	Rectangles []Rect   `json:"rectangles"`
	Circles    []Circle `json:"circles,omitempty"`
	Remaining  []Rect   `json:"remaining"`
	Iteration  int      `json:"iteration"`
}

// CoveredArea returns the total area of the step's rectangles and circles.
func (s CoveringStep) CoveredArea() float64 {
	total := 0.0
	for _, r := range s.Rectangles {
		total += r.Area()
	}
	for _, c := range s.Circles {
		total += math.Pi * c.R * c.R
	}
	return total
}

// ShapeMode selects the covering shape strategy.
type ShapeMode string

const (
	ShapeSquares    ShapeMode = "squares"    // Grid cells merged into larger squares
	ShapeRectangles ShapeMode = "rectangles" // Square phase plus adjacent-pair rectangle merging
	ShapeCircles    ShapeMode = "circles"    // Independent largest-first disk placement
)

// Option clamping bounds. Out-of-range values are clamped rather than
// rejected; invalid values fall back to defaults.
const (
	MinSizeFloor = 1.0
	MinSizeCeil  = 500.0
	KFloor       = 2
	KCeil        = 1024
)

// CoverOptions configures a covering run.
type CoverOptions struct {
	MinSize float64   `json:"min_size"` // Grid cell side length, clamped to [1, 500]
	MaxK    int       `json:"max_k"`    // Ladder upper bound, clamped to [2, 1024]
	MinK    int       `json:"min_k"`    // Ladder lower bound, clamped to [2, MaxK]
	Shape   ShapeMode `json:"shape"`    // Covering shape strategy
}

// DefaultOptions returns the standard covering configuration.
func DefaultOptions() CoverOptions {
	return CoverOptions{
		MinSize: 8,
		MaxK:    8,
		MinK:    2,
		Shape:   ShapeSquares,
	}
}

// Normalized returns a copy of the options with every field clamped to its
// documented range. NaN, non-positive, and unknown values fall back to the
// defaults instead of failing.
func (o CoverOptions) Normalized() CoverOptions {
	d := DefaultOptions()

	if math.IsNaN(o.MinSize) || math.IsInf(o.MinSize, 0) || o.MinSize <= 0 {
		o.MinSize = d.MinSize
	}
	if o.MinSize < MinSizeFloor {
		o.MinSize = MinSizeFloor
	}
	if o.MinSize > MinSizeCeil {
		o.MinSize = MinSizeCeil
	}

	if o.MaxK <= 0 {
		o.MaxK = d.MaxK
	}
	o.MaxK = clampK(o.MaxK)

	if o.MinK <= 0 {
		o.MinK = d.MinK
	}
	o.MinK = clampK(o.MinK)
	// The ladder floor can never exceed its ceiling.
	if o.MinK > o.MaxK {
		o.MinK = o.MaxK
	}

	switch o.Shape {
	case ShapeSquares, ShapeRectangles, ShapeCircles:
	default:
		o.Shape = d.Shape
	}
	return o
}

func clampK(k int) int {
	if k < KFloor {
		return KFloor
	}
	if k > KCeil {
		return KCeil
	}
	return k
}

// CoverResult holds the final state of a completed covering run.
type CoverResult struct {
	Shape      ShapeMode  `json:"shape"`
	Rectangles []Rect     `json:"rectangles,omitempty"`
	Circles    []Circle   `json:"circles,omitempty"`
	Steps      int        `json:"steps"` // Total steps yielded, including the initial snapshot
	Stats      CoverStats `json:"stats"`
}

// Plan ties everything together for save/load.
type Plan struct {
	Name    string       `json:"name"`
	Zones   []Zone       `json:"zones"`
	Options CoverOptions `json:"options"`
	Result  *CoverResult `json:"result,omitempty"`
}

func NewPlan() Plan {
	return Plan{
		Name:    "Untitled",
		Zones:   []Zone{},
		Options: DefaultOptions(),
	}
}
