package eval

import (
	"sync"

	"github.com/pkg/errors"
)

// ClassAP is the evaluation outcome for a single class.
type ClassAP struct {
	// Class is the class index in [0, numClasses).
	Class int
	// AP is the 11-point interpolated average precision, in [0, 1].
	AP float64
	// GroundTruths is the total ground-truth instance count for this class
	// across the dataset (the recall denominator).
	GroundTruths int
	// Detections is the total detection count for this class.
	Detections int
	// TruePositives is how many of those detections matched a ground truth.
	TruePositives int
	// FalsePositives is Detections - TruePositives.
	FalsePositives int
}

// Result is the outcome of a full mAP computation.
type Result struct {
	// MeanAP is the arithmetic mean of AP over all classes, in [0, 1].
	MeanAP float64
	// PerClass holds one entry per class index, in order.
	PerClass []ClassAP
}

// ComputeMAP computes per-class average precision and its mean over the
// given dataset snapshot.
//
// Every class contributes to the mean, including classes with no ground
// truth anywhere in the dataset: their AP is 0 by convention, so a class
// absent from a small evaluation split depresses the mean rather than
// raising an error. Classes with no detections behave the same way.
//
// Arguments:
// - batches: Complete, immutable per-image results for the run.
// - numClasses: Number of classes in the dataset; labels live in
//   [0, numClasses).
// - opts: Optional threshold, overlap function and worker-count overrides.
//
// Returns:
// - The per-class and mean AP values.
// - An error if the input is malformed (mismatched slices, out-of-range
//   labels, non-finite scores or coordinates); no partial result is
//   produced.
func ComputeMAP(batches []ImageResult, numClasses int, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	if err := validateBatches(batches, numClasses); err != nil {
		return nil, errors.Wrap(err, "invalid evaluation input")
	}

	perClass := make([]ClassAP, numClasses)
	errs := make([]error, numClasses)

	// Classes are independent: each one reads only its own partitioned
	// slice, so they parallelize over a bounded worker pool. The results
	// are deterministic for any worker count.
	workers := o.Workers
	if workers > numClasses {
		workers = numClasses
	}
	classes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for class := range classes {
				perClass[class], errs[class] = evaluateClass(batches, class, o)
			}
		}()
	}
	for class := 0; class < numClasses; class++ {
		classes <- class
	}
	close(classes)
	wg.Wait()

	for class, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating class %d", class)
		}
	}

	sum := 0.0
	for _, c := range perClass {
		sum += c.AP
	}

	return &Result{
		MeanAP:   sum / float64(numClasses),
		PerClass: perClass,
	}, nil
}

// evaluateClass runs the full per-class pipeline: partition every image,
// match greedily, rank the pooled results and integrate the curve.
func evaluateClass(batches []ImageResult, class int, opts *Options) (ClassAP, error) {
	out := ClassAP{Class: class}

	var pairs []scoredLabel
	for i := range batches {
		dets, gts := partitionImage(&batches[i], class)
		out.GroundTruths += len(gts)

		labels, err := matchImage(dets, gts, opts)
		if err != nil {
			return ClassAP{}, errors.Wrapf(err, "image %q", batches[i].ImageID)
		}
		pairs = append(pairs, labels...)
	}

	out.Detections = len(pairs)
	for _, p := range pairs {
		if p.TP {
			out.TruePositives++
		}
	}
	out.FalsePositives = out.Detections - out.TruePositives

	// A class with no ground truth has an undefined recall axis; its AP is
	// 0 by definition rather than an error, so the mean stays meaningful.
	if out.GroundTruths == 0 {
		return out, nil
	}

	cumTP, cumFP := accumulate(pairs)
	precision, recall := precisionRecall(cumTP, cumFP, out.GroundTruths)
	out.AP = averagePrecision(precision, recall)
	return out, nil
}
