package boxes

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Overlaps computes the pairwise IoU matrix between two sets of boxes.
//
// Arguments:
// - a: First set of boxes (typically detections).
// - b: Second set of boxes (typically ground truths).
//
// Returns:
// - A len(a) x len(b) float32 tensor where entry (i, j) is a[i].IoU(b[j]).
// - An error if either set is empty; callers are expected to handle the
//   empty cases before asking for a matrix.
func Overlaps(a, b []Box) (*tensor.Dense, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, errors.Errorf("overlaps: need non-empty box sets, got %dx%d", len(a), len(b))
	}

	backing := make([]float32, len(a)*len(b))
	for i, boxA := range a {
		row := backing[i*len(b) : (i+1)*len(b)]
		for j, boxB := range b {
			row[j] = boxA.IoU(boxB)
		}
	}

	return tensor.New(
		tensor.WithShape(len(a), len(b)),
		tensor.WithBacking(backing),
	), nil
}
