// Package imaging validates uploaded item photos. Submitted bytes are
// stored exactly as received (the public URL serves the original file),
// so validation decodes but never re-encodes.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	_ "golang.org/x/image/webp"
)

// MaxDimension is the largest accepted width or height in pixels.
const MaxDimension = 8192

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Validate sniffs the actual MIME type from the bytes (not trusting client
// headers), checks the data decodes as that image format, and bounds its
// dimensions. It returns the detected MIME type.
func Validate(data []byte) (string, error) {
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return "", fmt.Errorf("unsupported image format: %s (only JPEG, PNG and WebP accepted)", detected)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return "", fmt.Errorf("image too large: %dx%d exceeds %d pixels per side", cfg.Width, cfg.Height, MaxDimension)
	}

	return detected, nil
}
