package eval

import (
	"github.com/pkg/errors"

	"github.com/wuxiangchao/luminoth/boxes"
)

// Detection is one predicted object instance: a bounding box, an integer
// class label and a confidence score. Scores are only used for ranking and
// need not be normalized.
type Detection struct {
	Box   boxes.Box
	Label int
	Score float32
}

// GroundTruth is one annotated object instance. Ground truths carry no score.
type GroundTruth struct {
	Box   boxes.Box
	Label int
}

// ImageResult bundles the detector output and the annotations for a single
// image. ImageID is carried for traceability only; it plays no part in the
// metric computation. The engine treats an ImageResult as a read-only
// snapshot.
type ImageResult struct {
	ImageID      string
	Detections   []Detection
	GroundTruths []GroundTruth
}

// NewImageResult assembles an ImageResult from aligned coordinate, label and
// score slices, the shape a detector typically emits.
//
// Arguments:
// - imageID: Identifier for the image, used in error messages and reports.
// - detBoxes, detLabels, detScores: Per-detection box, class label and score.
// - gtBoxes, gtLabels: Per-ground-truth box and class label.
//
// Returns:
// - The assembled ImageResult.
// - An error if the detection slices or the ground-truth slices disagree in
//   length. Label-range and finiteness checks happen later, in ComputeMAP.
func NewImageResult(
	imageID string,
	detBoxes []boxes.Box, detLabels []int, detScores []float32,
	gtBoxes []boxes.Box, gtLabels []int,
) (ImageResult, error) {
	if len(detBoxes) != len(detLabels) || len(detBoxes) != len(detScores) {
		return ImageResult{}, errors.Errorf(
			"image %q: mismatched detection slices: %d boxes, %d labels, %d scores",
			imageID, len(detBoxes), len(detLabels), len(detScores))
	}
	if len(gtBoxes) != len(gtLabels) {
		return ImageResult{}, errors.Errorf(
			"image %q: mismatched ground-truth slices: %d boxes, %d labels",
			imageID, len(gtBoxes), len(gtLabels))
	}

	res := ImageResult{ImageID: imageID}
	for i := range detBoxes {
		res.Detections = append(res.Detections, Detection{
			Box:   detBoxes[i],
			Label: detLabels[i],
			Score: detScores[i],
		})
	}
	for i := range gtBoxes {
		res.GroundTruths = append(res.GroundTruths, GroundTruth{
			Box:   gtBoxes[i],
			Label: gtLabels[i],
		})
	}
	return res, nil
}
