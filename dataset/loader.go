// Package dataset - Loading detector output and ground-truth annotations
// from disk for evaluation runs.
package dataset

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/wuxiangchao/luminoth/boxes"
	"github.com/wuxiangchao/luminoth/eval"
)

// DetectionRecord is one image's detector output as stored on disk. The
// three slices are aligned: entry i of each describes the same detection.
type DetectionRecord struct {
	// ImageID identifies the image the detections belong to.
	ImageID string `json:"image_id"`
	// Boxes holds one [x1, y1, x2, y2] quadruple per detection.
	Boxes [][4]float32 `json:"boxes"`
	// Labels holds the integer class label per detection.
	Labels []int `json:"labels"`
	// Scores holds the confidence score per detection.
	Scores []float32 `json:"scores"`
}

// GroundTruthRecord is one image's annotations as stored on disk.
type GroundTruthRecord struct {
	ImageID string       `json:"image_id"`
	Boxes   [][4]float32 `json:"boxes"`
	Labels  []int        `json:"labels"`
}

// LoadRun reads a detections file and a ground-truth file and joins them by
// image ID into the per-image snapshots the evaluation engine consumes.
//
// Images that appear only in the ground-truth file still matter: their
// instances raise the recall denominators, so they are appended (with zero
// detections) after the detection-file images. Images that appear only in
// the detections file get an empty ground truth, which marks all their
// detections false positive downstream.
//
// Arguments:
// - detectionsPath: JSON file holding an array of DetectionRecord.
// - groundTruthPath: JSON file holding an array of GroundTruthRecord.
//
// Returns:
// - Per-image results in detections-file order, ground-truth-only images
//   last in ground-truth-file order.
// - An error on unreadable files, malformed JSON, duplicated image IDs or
//   misaligned record slices.
func LoadRun(detectionsPath, groundTruthPath string) ([]eval.ImageResult, error) {
	var detections []DetectionRecord
	if err := readJSONFile(detectionsPath, &detections); err != nil {
		return nil, errors.Wrap(err, "loading detections")
	}

	var groundTruths []GroundTruthRecord
	if err := readJSONFile(groundTruthPath, &groundTruths); err != nil {
		return nil, errors.Wrap(err, "loading ground truth")
	}

	gtByImage := make(map[string]GroundTruthRecord, len(groundTruths))
	for _, rec := range groundTruths {
		if _, dup := gtByImage[rec.ImageID]; dup {
			return nil, errors.Errorf("duplicate ground-truth record for image %q", rec.ImageID)
		}
		gtByImage[rec.ImageID] = rec
	}

	seen := make(map[string]bool, len(detections))
	results := make([]eval.ImageResult, 0, len(groundTruths))
	for _, rec := range detections {
		if seen[rec.ImageID] {
			return nil, errors.Errorf("duplicate detection record for image %q", rec.ImageID)
		}
		seen[rec.ImageID] = true

		gt := gtByImage[rec.ImageID]
		res, err := eval.NewImageResult(
			rec.ImageID,
			toBoxes(rec.Boxes), rec.Labels, rec.Scores,
			toBoxes(gt.Boxes), gt.Labels,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	// Ground-truth-only images, in file order.
	for _, rec := range groundTruths {
		if seen[rec.ImageID] {
			continue
		}
		res, err := eval.NewImageResult(
			rec.ImageID,
			nil, nil, nil,
			toBoxes(rec.Boxes), rec.Labels,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	return nil
}

func toBoxes(quads [][4]float32) []boxes.Box {
	if len(quads) == 0 {
		return nil
	}
	out := make([]boxes.Box, len(quads))
	for i, q := range quads {
		out[i] = boxes.Box{X1: q[0], Y1: q[1], X2: q[2], Y2: q[3]}
	}
	return out
}
