package vis

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down to the given width, preserving aspect ratio.
// Images already narrower than width are returned unchanged.
func Thumbnail(img image.Image, width uint) image.Image {
	if uint(img.Bounds().Dx()) <= width {
		return img
	}
	return resize.Resize(width, 0, img, resize.Lanczos3)
}
