package eval

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/wuxiangchao/luminoth/boxes"
)

// scoredLabel pairs a detection's confidence score with its matching
// outcome. TP is true when the detection claimed a ground truth.
type scoredLabel struct {
	Score float32
	TP    bool
}

// matchImage performs greedy matching for one (class, image) pair.
//
// Detections are processed in descending score order, ties broken by
// original input position so results are reproducible. Each detection looks
// only at the ground truth it overlaps most: if that overlap meets the
// threshold and the ground truth is unclaimed, the detection is a true
// positive and claims it; in every other case, including "my best ground
// truth was already taken but another one over the threshold is free", the
// detection is a false positive. Each ground truth is claimed at most once.
//
// The returned labels are in descending score order, each aligned with the
// score it belongs to.
func matchImage(dets []Detection, gts []boxes.Box, opts *Options) ([]scoredLabel, error) {
	if len(dets) == 0 {
		return nil, nil
	}

	// Score-descending processing order, stable across equal scores.
	order := make([]int, len(dets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dets[order[a]].Score > dets[order[b]].Score
	})

	out := make([]scoredLabel, len(dets))
	for k, idx := range order {
		out[k] = scoredLabel{Score: dets[idx].Score}
	}

	// No ground truth in this class and image: every detection is a false
	// positive regardless of score.
	if len(gts) == 0 {
		return out, nil
	}

	detBoxes := make([]boxes.Box, len(dets))
	for i, det := range dets {
		detBoxes[i] = det.Box
	}

	overlaps, err := opts.Overlap(detBoxes, gts)
	if err != nil {
		return nil, errors.Wrap(err, "computing overlap matrix")
	}
	shape := overlaps.Shape()
	if len(shape) != 2 || shape[0] != len(dets) || shape[1] != len(gts) {
		return nil, errors.Errorf(
			"overlap matrix has shape %v, want (%d, %d)", shape, len(dets), len(gts))
	}
	matrix, ok := overlaps.Data().([]float32)
	if !ok {
		return nil, errors.Errorf("overlap matrix is %v, want float32", overlaps.Dtype())
	}

	claimed := make([]bool, len(gts))
	for k, idx := range order {
		row := matrix[idx*len(gts) : (idx+1)*len(gts)]

		// Argmax over the row; the first maximum wins on exact ties.
		best := 0
		for j, ov := range row {
			if ov > row[best] {
				best = j
			}
		}

		if row[best] >= opts.IoUThreshold && !claimed[best] {
			out[k].TP = true
			claimed[best] = true
		}
	}

	return out, nil
}
