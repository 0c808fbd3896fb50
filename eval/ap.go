package eval

// apRecallLevels is the number of fixed recall levels the interpolated
// precision is sampled at: 0.0, 0.1, ..., 1.0.
const apRecallLevels = 11

// averagePrecision integrates the interpolated precision-recall curve at 11
// fixed recall levels (the PASCAL VOC 2007 scheme). For each level t the
// contribution is the maximum precision among curve points whose recall
// reaches t, or 0 when recall never gets there; the average over the 11
// levels is the AP.
//
// This fixed-grid integration is kept deliberately: the all-points variant
// used by later protocols gives slightly different numbers, and comparability
// with the established metric matters more than estimator accuracy here.
func averagePrecision(precision, recall []float64) float64 {
	if len(recall) == 0 {
		return 0
	}

	// Summing first and dividing once keeps a perfect detector at exactly
	// 1.0; accumulating interpolated/11 drifts past it.
	sum := 0.0
	for level := 0; level < apRecallLevels; level++ {
		t := float64(level) / float64(apRecallLevels-1)

		// Max precision among points whose recall reaches t; stays 0 when
		// recall never gets that far.
		interpolated := 0.0
		for i, r := range recall {
			if r >= t && precision[i] > interpolated {
				interpolated = precision[i]
			}
		}
		sum += interpolated
	}
	return sum / apRecallLevels
}
