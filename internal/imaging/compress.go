package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxReferenceDim is the longest edge a reference image may have before
// upload. Larger images are scaled down and re-encoded as JPEG.
const MaxReferenceDim = 1568

const jpegQuality = 85

// ShrinkDataURL downscales an oversized reference image and re-encodes it
// as JPEG. Images already within the limit pass through untouched, so PNG
// transparency survives for small inputs.
func ShrinkDataURL(uri string, maxDim int) (string, error) {
	_, raw, err := DecodeDataURL(uri)
	if err != nil {
		return "", err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode reference image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return uri, nil
	}

	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("re-encode reference image: %w", err)
	}
	return EncodeDataURL("image/jpeg", buf.Bytes()), nil
}
