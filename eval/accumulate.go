package eval

import "sort"

// accumulate ranks one class's (label, score) pairs across the whole dataset
// and computes cumulative true/false positive counts.
//
// The pairs are re-sorted by descending score with a stable sort, so exact
// score ties keep their accumulation order (image order, then within-image
// rank). The tie-break is arbitrary but deterministic, which is what
// reproducibility needs.
//
// Returns two equal-length, monotonically non-decreasing sequences:
// cumulative true positives and cumulative false positives at each rank
// cutoff. Both are empty when the class has no detections.
func accumulate(pairs []scoredLabel) (cumTP, cumFP []int) {
	if len(pairs) == 0 {
		return nil, nil
	}

	ranked := make([]scoredLabel, len(pairs))
	copy(ranked, pairs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	cumTP = make([]int, len(ranked))
	cumFP = make([]int, len(ranked))
	tp, fp := 0, 0
	for i, p := range ranked {
		if p.TP {
			tp++
		} else {
			fp++
		}
		cumTP[i] = tp
		cumFP[i] = fp
	}
	return cumTP, cumFP
}
