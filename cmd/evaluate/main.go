package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/wuxiangchao/luminoth/dataset"
	"github.com/wuxiangchao/luminoth/eval"
	"github.com/wuxiangchao/luminoth/report"
	"github.com/wuxiangchao/luminoth/vis"
)

func main() {
	var (
		detectionsFile  = flag.String("detections", "", "Path to detections JSON file")
		groundTruthFile = flag.String("ground-truth", "", "Path to ground-truth JSON file")
		numClasses      = flag.Int("num-classes", 0, "Number of classes in the dataset")
		iouThreshold    = flag.Float64("iou", float64(eval.DefaultIoUThreshold), "IoU threshold for a match")
		workers         = flag.Int("workers", 0, "Number of classes to evaluate concurrently (0 = all CPUs)")
		outputDir       = flag.String("output", "./evaluation_results", "Output directory for reports")
		imagesDir       = flag.String("images", "", "Directory with the evaluated images (for -visualize)")
		visualize       = flag.Bool("visualize", false, "Write per-image overlays of detections and ground truth")
		cocoNames       = flag.Bool("coco-names", false, "Resolve class indices against the COCO name table")
	)
	flag.Parse()

	if *detectionsFile == "" {
		log.Fatal("Detections file is required (-detections)")
	}
	if *groundTruthFile == "" {
		log.Fatal("Ground-truth file is required (-ground-truth)")
	}
	if *numClasses <= 0 {
		log.Fatal("A positive class count is required (-num-classes)")
	}
	if *visualize && *imagesDir == "" {
		log.Fatal("Visualization requires the images directory (-images)")
	}

	batches, err := dataset.LoadRun(*detectionsFile, *groundTruthFile)
	if err != nil {
		log.Fatalf("Failed to load evaluation run: %v", err)
	}

	start := time.Now()
	result, err := eval.ComputeMAP(batches, *numClasses,
		eval.WithIoUThreshold(float32(*iouThreshold)),
		eval.WithWorkers(*workers),
	)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}
	elapsed := time.Since(start)

	var names []string
	if *cocoNames {
		names = report.COCOClasses
	}

	printResult(result, names)
	fmt.Printf("\nmAP@%.2f = %.4f (%d images, %v)\n", *iouThreshold, result.MeanAP, len(batches), elapsed)

	evaluation := report.New(report.NewEvaluationArgs{
		Result:       result,
		ClassNames:   names,
		IoUThreshold: float32(*iouThreshold),
		ImageCount:   len(batches),
		Duration:     elapsed,
	})
	path, err := evaluation.Write(*outputDir)
	if err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("Report written to %s", path)

	if *visualize {
		if err := writeOverlays(batches, names, *imagesDir, *outputDir); err != nil {
			log.Fatalf("Failed to write overlays: %v", err)
		}
	}
}

func printResult(result *eval.Result, names []string) {
	fmt.Printf("%-6s %-20s %10s %8s %8s %8s\n", "class", "name", "AP", "gt", "tp", "fp")
	for _, cls := range result.PerClass {
		fmt.Printf("%-6d %-20s %10.4f %8d %8d %8d\n",
			cls.Class, report.ClassName(names, cls.Class),
			cls.AP, cls.GroundTruths, cls.TruePositives, cls.FalsePositives)
	}
}

// writeOverlays renders one annotated copy per image into <outputDir>/overlays.
// Image IDs are expected to be filenames relative to imagesDir; images that
// cannot be found are skipped with a note rather than aborting the run.
func writeOverlays(batches []eval.ImageResult, names []string, imagesDir, outputDir string) error {
	overlayDir := filepath.Join(outputDir, "overlays")
	if err := os.MkdirAll(overlayDir, 0o755); err != nil {
		return err
	}

	for _, batch := range batches {
		src := filepath.Join(imagesDir, batch.ImageID)
		if _, err := os.Stat(src); err != nil {
			log.Printf("Skipping overlay for %q: %v", batch.ImageID, err)
			continue
		}
		dst := filepath.Join(overlayDir, filepath.Base(batch.ImageID))
		if err := vis.SaveOverlay(src, dst, batch, names); err != nil {
			return err
		}
	}
	return nil
}
