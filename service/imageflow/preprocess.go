package imageflow

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// maxEdge is the longest side an upload may keep; larger images are
// downscaled before leaving for backend storage.
const maxEdge = 1600

const jpegQuality = 85

// NormalizeUpload prepares an attached file for upload: webp is decoded and
// re-encoded as JPEG (the backend image store takes jpeg/png), and oversized
// images are scaled down to fit maxEdge. Non-image data is rejected.
func NormalizeUpload(filename string, data []byte) (string, []byte, error) {
	var (
		img    image.Image
		format string
		err    error
	)
	if isWebp(data) {
		img, err = webp.Decode(bytes.NewReader(data))
		format = "webp"
	} else {
		img, format, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return "", nil, fmt.Errorf("imageflow: %q is not a supported image: %w", filename, err)
	}

	bounds := img.Bounds()
	oversized := bounds.Dx() > maxEdge || bounds.Dy() > maxEdge
	if !oversized && format != "webp" {
		return filename, data, nil
	}
	if oversized {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return "", nil, err
		}
	default:
		// jpeg and webp both leave as jpeg
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return "", nil, err
		}
		filename = swapExt(filename, ".jpg")
	}
	return filename, buf.Bytes(), nil
}

func isWebp(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

func swapExt(filename, ext string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i] + ext
	}
	return filename + ext
}
