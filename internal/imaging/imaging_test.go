package imaging

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestValidatePNG(t *testing.T) {
	mime, err := Validate(pngBytes(t, 100, 50))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if mime != "image/png" {
		t.Errorf("expected image/png, got %q", mime)
	}
}

func TestValidateRejectsNonImage(t *testing.T) {
	if _, err := Validate([]byte("definitely not an image")); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestValidateRejectsSpoofedExtensionlessData(t *testing.T) {
	// PNG magic bytes followed by garbage: sniffs as png but fails to decode.
	data := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0xff}, 64)...)
	if _, err := Validate(data); err == nil {
		t.Error("expected error for truncated image data")
	}
}

func TestValidateRejectsOversizedImage(t *testing.T) {
	// A 1-pixel-wide strip keeps the encode cheap while tripping the bound.
	if _, err := Validate(pngBytes(t, 1, MaxDimension+1)); err == nil {
		t.Error("expected error for oversized image")
	}
}
