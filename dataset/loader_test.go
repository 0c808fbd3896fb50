package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxiangchao/luminoth/eval"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRunJoinsByImageID(t *testing.T) {
	dir := t.TempDir()

	detPath := writeFile(t, dir, "detections.json", `[
		{"image_id": "frame-1", "boxes": [[0, 0, 10, 10]], "labels": [0], "scores": [0.9]},
		{"image_id": "frame-2", "boxes": [[5, 5, 15, 15]], "labels": [1], "scores": [0.4]}
	]`)
	gtPath := writeFile(t, dir, "ground_truth.json", `[
		{"image_id": "frame-1", "boxes": [[0, 0, 10, 10]], "labels": [0]},
		{"image_id": "frame-3", "boxes": [[1, 1, 2, 2]], "labels": [1]}
	]`)

	results, err := LoadRun(detPath, gtPath)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "frame-1", results[0].ImageID)
	require.Len(t, results[0].Detections, 1)
	require.Len(t, results[0].GroundTruths, 1)
	assert.Equal(t, float32(0.9), results[0].Detections[0].Score)
	assert.Equal(t, float32(10), results[0].Detections[0].Box.X2)

	// frame-2 has no annotations; its detections stay as candidates.
	assert.Equal(t, "frame-2", results[1].ImageID)
	assert.Len(t, results[1].Detections, 1)
	assert.Empty(t, results[1].GroundTruths)

	// frame-3 has annotations but no detections; it still raises the
	// recall denominator.
	assert.Equal(t, "frame-3", results[2].ImageID)
	assert.Empty(t, results[2].Detections)
	assert.Len(t, results[2].GroundTruths, 1)
}

func TestLoadRunFeedsEvaluation(t *testing.T) {
	dir := t.TempDir()

	detPath := writeFile(t, dir, "detections.json", `[
		{"image_id": "frame-1", "boxes": [[0, 0, 100, 100]], "labels": [0], "scores": [0.9]}
	]`)
	gtPath := writeFile(t, dir, "ground_truth.json", `[
		{"image_id": "frame-1", "boxes": [[0, 0, 100, 100]], "labels": [0]}
	]`)

	results, err := LoadRun(detPath, gtPath)
	require.NoError(t, err)

	res, err := eval.ComputeMAP(results, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.MeanAP)
}

func TestLoadRunDuplicateImageID(t *testing.T) {
	dir := t.TempDir()

	detPath := writeFile(t, dir, "detections.json", `[
		{"image_id": "frame-1", "boxes": [], "labels": [], "scores": []},
		{"image_id": "frame-1", "boxes": [], "labels": [], "scores": []}
	]`)
	gtPath := writeFile(t, dir, "ground_truth.json", `[]`)

	_, err := LoadRun(detPath, gtPath)
	assert.Error(t, err)
}

func TestLoadRunMisalignedRecord(t *testing.T) {
	dir := t.TempDir()

	detPath := writeFile(t, dir, "detections.json", `[
		{"image_id": "frame-1", "boxes": [[0, 0, 10, 10]], "labels": [0, 1], "scores": [0.9]}
	]`)
	gtPath := writeFile(t, dir, "ground_truth.json", `[]`)

	_, err := LoadRun(detPath, gtPath)
	assert.Error(t, err)
}

func TestLoadRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	gtPath := writeFile(t, dir, "ground_truth.json", `[]`)

	_, err := LoadRun(filepath.Join(dir, "absent.json"), gtPath)
	assert.Error(t, err)
}

func TestLoadRunMalformedJSON(t *testing.T) {
	dir := t.TempDir()

	detPath := writeFile(t, dir, "detections.json", `{"not": "an array"`)
	gtPath := writeFile(t, dir, "ground_truth.json", `[]`)

	_, err := LoadRun(detPath, gtPath)
	assert.Error(t, err)
}
