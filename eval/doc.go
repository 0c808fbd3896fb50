// Package eval computes detection-evaluation metrics: per-class Average
// Precision at a fixed IoU threshold and its mean over all classes (mAP).
//
// The pipeline matches detections to ground truths greedily per class and
// image (highest confidence first), ranks the matched/unmatched labels by
// score across the whole dataset, derives the precision-recall curve from
// the cumulative counts, and integrates it with 11-point interpolated
// precision. Matching is deliberately greedy rather than optimal: a
// higher-confidence detection claims a ground truth before a lower-confidence
// one even when the latter has better IoU, which is what the standard
// PASCAL-style protocol prescribes.
package eval
