package eval

import "github.com/wuxiangchao/luminoth/boxes"

// partitionImage selects the subset of one image's detections and ground
// truths whose label equals class. Relative order is preserved in both
// subsets; empty subsets are a normal outcome, not an error.
func partitionImage(img *ImageResult, class int) ([]Detection, []boxes.Box) {
	var dets []Detection
	for _, det := range img.Detections {
		if det.Label == class {
			dets = append(dets, det)
		}
	}

	var gts []boxes.Box
	for _, gt := range img.GroundTruths {
		if gt.Label == class {
			gts = append(gts, gt.Box)
		}
	}

	return dets, gts
}
