package board

import (
	"math"

	"k8s.io/apimachinery/pkg/util/sets"
)

type Point struct {
	X, Y float64
}

// Rect is an axis aligned bounding box, Y growing downwards.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Overlap returns the intersection area of r and o.
func (r Rect) Overlap(o Rect) float64 {
	w := math.Min(r.Right(), o.Right()) - math.Max(r.Left, o.Left)
	h := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Top, o.Top)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

type TargetKind int

const (
	TargetContainer TargetKind = iota
	TargetItem
)

func (k TargetKind) String() string {
	if k == TargetItem {
		return "item"
	}
	return "container"
}

// Target is a resolved drop target. For item targets Container is the
// container the item was found in when the target was resolved.
type Target struct {
	Kind      TargetKind
	Container ContainerKey
	Item      int64
}

func ContainerTarget(key ContainerKey) Target {
	return Target{Kind: TargetContainer, Container: key}
}

func ItemTarget(itemID int64, key ContainerKey) Target {
	return Target{Kind: TargetItem, Container: key, Item: itemID}
}

// Draggable is the element under the pointer.
type Draggable struct {
	Item int64
	Rect Rect
}

// Droppable is a candidate drop target. Item droppables only need Kind and Item set.
type Droppable struct {
	Target Target
	Rect   Rect
}

// DetectFunc resolves the drop target for the current frame.
type DetectFunc func(dragged Draggable, droppables []Droppable, reg ContainerReader) (Target, bool)

// DetectCollision resolves a drag frame to a single target.
//
// The container overlapping the dragged rect the most wins; inside it the item
// whose center is closest to the dragged center wins. When that item is the
// last one, the pointer is below its center and the dragged item comes from
// another container, the container itself is returned so the drop appends.
// On ties the candidate listed first wins. The layout is assumed to be a single
// vertical column.
func DetectCollision(dragged Draggable, droppables []Droppable, reg ContainerReader) (Target, bool) {
	var container *Droppable
	best := 0.0
	for i := range droppables {
		d := &droppables[i]
		if d.Target.Kind != TargetContainer {
			continue
		}
		if area := d.Rect.Overlap(dragged.Rect); area > best {
			best = area
			container = d
		}
	}
	if container == nil {
		return Target{}, false
	}

	key := container.Target.Container
	seq := reg.Items(key)
	members := sets.New(seq...)

	center := dragged.Rect.Center()
	var nearest *Droppable
	nearestDist := math.Inf(1)
	for i := range droppables {
		d := &droppables[i]
		if d.Target.Kind != TargetItem || !members.Has(d.Target.Item) {
			continue
		}
		if dist := distance(center, d.Rect.Center()); dist < nearestDist {
			nearestDist = dist
			nearest = d
		}
	}
	if nearest == nil {
		return ContainerTarget(key), true
	}

	last := seq[len(seq)-1]
	if nearest.Target.Item == last && center.Y > nearest.Rect.Center().Y {
		if current, ok := reg.ContainerOf(dragged.Item); !ok || current != key {
			return ContainerTarget(key), true
		}
	}

	return ItemTarget(nearest.Target.Item, key), true
}
