// Package report - Serializable summaries of evaluation runs.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/wuxiangchao/luminoth/eval"
)

// ClassRow is the per-class slice of an evaluation report.
type ClassRow struct {
	Index            int     `json:"index"`
	Name             string  `json:"name"`
	AveragePrecision float64 `json:"average_precision"`
	GroundTruths     int     `json:"ground_truths"`
	Detections       int     `json:"detections"`
	TruePositives    int     `json:"true_positives"`
	FalsePositives   int     `json:"false_positives"`
}

// Evaluation captures one full mAP run in a form that serializes cleanly.
type Evaluation struct {
	Timestamp        time.Time     `json:"timestamp"`
	Duration         time.Duration `json:"duration"`
	IoUThreshold     float32       `json:"iou_threshold"`
	ImageCount       int           `json:"image_count"`
	DetectionCount   int           `json:"detection_count"`
	GroundTruthCount int           `json:"ground_truth_count"`
	MeanAP           float64       `json:"mean_ap"`
	Classes          []ClassRow    `json:"classes"`
}

// NewEvaluationArgs carries everything New needs beyond the raw result.
type NewEvaluationArgs struct {
	Result       *eval.Result
	ClassNames   []string
	IoUThreshold float32
	ImageCount   int
	Duration     time.Duration
}

// New builds an Evaluation from an engine result. Class indices without a
// name in args.ClassNames fall back to a synthetic "class-N" name.
func New(args NewEvaluationArgs) *Evaluation {
	e := &Evaluation{
		Timestamp:    time.Now(),
		Duration:     args.Duration,
		IoUThreshold: args.IoUThreshold,
		ImageCount:   args.ImageCount,
		MeanAP:       args.Result.MeanAP,
	}

	for _, cls := range args.Result.PerClass {
		e.DetectionCount += cls.Detections
		e.GroundTruthCount += cls.GroundTruths
		e.Classes = append(e.Classes, ClassRow{
			Index:            cls.Class,
			Name:             ClassName(args.ClassNames, cls.Class),
			AveragePrecision: cls.AP,
			GroundTruths:     cls.GroundTruths,
			Detections:       cls.Detections,
			TruePositives:    cls.TruePositives,
			FalsePositives:   cls.FalsePositives,
		})
	}
	return e
}

// Write saves the report as indented JSON under dir, creating the directory
// if needed. The filename embeds the timestamp so successive runs never
// clobber each other.
//
// Returns:
// - The path of the written file.
// - An error if the directory cannot be created or the file written.
func (e *Evaluation) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating report directory")
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshaling report")
	}

	path := filepath.Join(dir, fmt.Sprintf("evaluation_%s.json", e.Timestamp.Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "writing report")
	}
	return path, nil
}
