// Package attach turns picked image files into attachments staged on a draft.
package attach

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/itemdesk/internal/drafts"
)

// MaxSize is the largest file accepted for staging.
const MaxSize = 5 << 20

// JPEGQuality is used when an image is re-encoded after downscaling.
const JPEGQuality = 85

var (
	ErrTooLarge = errors.New("file too large, maximum is 5MB")
	ErrNotImage = errors.New("file is not an image")
)

// resizable lists formats imaging can decode and re-encode.
var resizable = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
}

// Load reads the image at path. When maxDim > 0, larger images are scaled
// down to fit and re-encoded as JPEG.
func Load(path string, maxDim int) (*drafts.Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return FromBytes(filepath.Base(path), data, maxDim)
}

// FromBytes stages data under name, sniffing the content type from the bytes.
func FromBytes(name string, data []byte, maxDim int) (*drafts.Attachment, error) {
	if len(data) > MaxSize {
		return nil, ErrTooLarge
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, ErrNotImage
	}

	a := &drafts.Attachment{Name: name, ContentType: mime, Data: data}
	if maxDim <= 0 || !resizable[mime] {
		return a, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return a, nil
	}

	img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return &drafts.Attachment{
		Name:        strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg",
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}

// Describe is a short label for a staged attachment, e.g. "mug.jpg (12 kB)".
func Describe(a *drafts.Attachment) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", a.Name, humanize.Bytes(uint64(len(a.Data))))
}
