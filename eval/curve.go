package eval

// precisionRecall derives the precision-recall curve from cumulative
// true/false positive counts. numGT is the total number of ground-truth
// instances for the class across the dataset (the recall denominator) and
// must be positive; the zero-ground-truth case is resolved to AP 0 before
// this point.
//
// Recall is monotonically non-decreasing with rank cutoff. Precision is not:
// every false positive drags it down.
func precisionRecall(cumTP, cumFP []int, numGT int) (precision, recall []float64) {
	if len(cumTP) == 0 {
		return nil, nil
	}

	precision = make([]float64, len(cumTP))
	recall = make([]float64, len(cumTP))
	for i := range cumTP {
		// cumTP[i]+cumFP[i] == i+1 by construction, never zero.
		precision[i] = float64(cumTP[i]) / float64(cumTP[i]+cumFP[i])
		recall[i] = float64(cumTP[i]) / float64(numGT)
	}
	return precision, recall
}
