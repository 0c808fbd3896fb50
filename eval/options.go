package eval

import (
	"runtime"

	"gorgonia.org/tensor"

	"github.com/wuxiangchao/luminoth/boxes"
)

// DefaultIoUThreshold is the overlap a detection must reach with a ground
// truth to count as a true positive.
const DefaultIoUThreshold float32 = 0.5

// OverlapFunc computes the pairwise overlap matrix between detections and
// ground truths. The returned tensor must be float32 with shape
// (len(dets), len(gts)) and values in [0, 1]. Both arguments are guaranteed
// non-empty by the caller.
type OverlapFunc func(dets, gts []boxes.Box) (*tensor.Dense, error)

// Options configures a mAP computation. Zero values are filled in by
// defaultOptions; use the With* helpers rather than building one by hand.
type Options struct {
	// IoUThreshold is the minimum overlap for a match.
	IoUThreshold float32
	// Overlap computes the pairwise overlap matrix.
	Overlap OverlapFunc
	// Workers bounds the number of classes evaluated concurrently.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithIoUThreshold sets the minimum overlap for a detection to count as a
// true positive.
func WithIoUThreshold(t float32) Option {
	return func(o *Options) { o.IoUThreshold = t }
}

// WithOverlapFunc substitutes the pairwise overlap computation. Useful in
// tests, where a synthetic matrix pins down matching behavior without
// crafting box geometry.
func WithOverlapFunc(f OverlapFunc) Option {
	return func(o *Options) { o.Overlap = f }
}

// WithWorkers bounds the number of classes evaluated concurrently. Values
// below 1 fall back to the default. The result is identical for any worker
// count; only wall-clock time changes.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func defaultOptions() *Options {
	return &Options{
		IoUThreshold: DefaultIoUThreshold,
		Overlap:      boxes.Overlaps,
		Workers:      runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Overlap == nil {
		o.Overlap = boxes.Overlaps
	}
	return o
}
