// Package boxes - Axis-aligned bounding boxes and pairwise overlap computation.
package boxes

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Box is an axis-aligned bounding box with float coordinates. X2 and Y2 are
// exclusive, so a box covers [X1, X2) x [Y1, Y2).
type Box struct {
	X1, Y1, X2, Y2 float32
}

func (b Box) String() string {
	return fmt.Sprintf("(%f, %f), (%f, %f)", b.X1, b.Y1, b.X2, b.Y2)
}

// Area returns the area of the box. Degenerate boxes (X2 <= X1 or Y2 <= Y1)
// have area 0.
func (b Box) Area() float32 {
	w := b.X2 - b.X1
	h := b.Y2 - b.Y1
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Intersection calculates the intersection area between two boxes.
//
// The intersection rectangle starts at the maximum of the two starting
// coordinates and ends at the minimum of the two ending coordinates. If
// either dimension collapses, the boxes do not overlap and the area is 0.
func (b Box) Intersection(other Box) float32 {
	ix1 := math32.Max(b.X1, other.X1)
	iy1 := math32.Max(b.Y1, other.Y1)
	ix2 := math32.Min(b.X2, other.X2)
	iy2 := math32.Min(b.Y2, other.Y2)

	interW := ix2 - ix1
	interH := iy2 - iy1
	if interW <= 0 || interH <= 0 {
		return 0
	}
	return interW * interH
}

// Union calculates the union area between two boxes using the principle of
// inclusion-exclusion: Area(A) + Area(B) - Intersection(A, B).
func (b Box) Union(other Box) float32 {
	return b.Area() + other.Area() - b.Intersection(other)
}

// IoU calculates the Intersection over Union between two boxes.
//
// Returns:
// - The IoU value between 0 and 1. Two degenerate boxes yield 0.
func (b Box) IoU(other Box) float32 {
	union := b.Union(other)
	if union <= 0 {
		return 0
	}
	return b.Intersection(other) / union
}

// Finite reports whether every coordinate of the box is a finite number.
// NaN and infinite coordinates cannot be compared meaningfully.
func (b Box) Finite() bool {
	for _, v := range [4]float32{b.X1, b.Y1, b.X2, b.Y2} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
