package eval

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// validateBatches checks every image snapshot before any matching begins.
// A single corrupt entry aborts the whole computation: mAP averages over
// classes, so a partial result would silently misrepresent the run.
func validateBatches(batches []ImageResult, numClasses int) error {
	if numClasses <= 0 {
		return errors.Errorf("numClasses must be positive, got %d", numClasses)
	}

	for i := range batches {
		img := &batches[i]
		for j, det := range img.Detections {
			if det.Label < 0 || det.Label >= numClasses {
				return errors.Errorf(
					"image %q: detection %d has class label %d outside [0, %d)",
					img.ImageID, j, det.Label, numClasses)
			}
			if math32.IsNaN(det.Score) || math32.IsInf(det.Score, 0) {
				return errors.Errorf(
					"image %q: detection %d has non-finite score %f",
					img.ImageID, j, det.Score)
			}
			if !det.Box.Finite() {
				return errors.Errorf(
					"image %q: detection %d has non-finite box coordinates %s",
					img.ImageID, j, det.Box)
			}
		}
		for j, gt := range img.GroundTruths {
			if gt.Label < 0 || gt.Label >= numClasses {
				return errors.Errorf(
					"image %q: ground truth %d has class label %d outside [0, %d)",
					img.ImageID, j, gt.Label, numClasses)
			}
			if !gt.Box.Finite() {
				return errors.Errorf(
					"image %q: ground truth %d has non-finite box coordinates %s",
					img.ImageID, j, gt.Box)
			}
		}
	}
	return nil
}
