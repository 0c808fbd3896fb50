// Package vis - Rendering evaluation results onto images for inspection.
package vis

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/wuxiangchao/luminoth/boxes"
	"github.com/wuxiangchao/luminoth/eval"
	"github.com/wuxiangchao/luminoth/report"
)

var (
	groundTruthColor = color.RGBA{0, 255, 0, 0}
	detectionColor   = color.RGBA{255, 0, 0, 0}
)

// toRect converts a box to an image.Rectangle. This loses fractional pixels
// around the edges, which is fine for drawing.
func toRect(b boxes.Box) image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2)).Canon()
}

// Overlay draws one image's ground truths and detections onto img in place.
// Ground truths are green, detections red with a "name score" caption, so
// missed instances and spurious detections stand out side by side.
func Overlay(img *gocv.Mat, res eval.ImageResult, names []string) {
	for _, gt := range res.GroundTruths {
		gocv.Rectangle(img, toRect(gt.Box), groundTruthColor, 2)
	}

	for _, det := range res.Detections {
		rect := toRect(det.Box)
		gocv.Rectangle(img, rect, detectionColor, 2)

		caption := fmt.Sprintf("%s %.2f", report.ClassName(names, det.Label), det.Score)
		origin := image.Pt(rect.Min.X, rect.Min.Y-6)
		gocv.PutText(img, caption, origin, gocv.FontHersheySimplex, 0.5, detectionColor, 1)
	}
}

// SaveOverlay reads the image at srcPath, draws res onto it and writes the
// result to dstPath.
func SaveOverlay(srcPath, dstPath string, res eval.ImageResult, names []string) error {
	img := gocv.IMRead(srcPath, gocv.IMReadColor)
	if img.Empty() {
		return errors.Errorf("cannot read image %s", srcPath)
	}
	defer img.Close()

	Overlay(&img, res, names)

	if ok := gocv.IMWrite(dstPath, img); !ok {
		return errors.Errorf("cannot write image %s", dstPath)
	}
	return nil
}
