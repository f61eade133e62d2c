package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/gift"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when a file's content does not look like any image format.
var ErrNotImage = errors.New("not an image")

// sniffLen covers every magic number filetype knows about.
const sniffLen = 262

// DecodeFile opens and decodes the image at path into tightly packed RGBA.
// maxSize > 0 shrinks images whose larger side exceeds it, keeping the aspect ratio.
func DecodeFile(path string, maxSize int) (*image.RGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	img, mime, err := Decode(f, maxSize)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return img, mime, nil
}

// Decode sniffs the stream's content type before handing it to the image decoders.
func Decode(r io.Reader, maxSize int) (*image.RGBA, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("failed to read image header: %w", err)
	}
	head = head[:n]

	kind, _ := filetype.Match(head)
	if !filetype.IsImage(head) {
		return nil, "", fmt.Errorf("%w: detected %q", ErrNotImage, kind.MIME.Value)
	}

	img, _, err := image.Decode(io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return ToRGBA(img, maxSize), kind.MIME.Value, nil
}

// ToRGBA converts img to an RGBA image anchored at the origin, shrinking it to fit
// maxSize when set.
func ToRGBA(img image.Image, maxSize int) *image.RGBA {
	var filters []gift.Filter
	b := img.Bounds()
	if maxSize > 0 && (b.Dx() > maxSize || b.Dy() > maxSize) {
		filters = append(filters, gift.ResizeToFit(maxSize, maxSize, gift.LinearResampling))
	}

	g := gift.New(filters...)
	dst := image.NewRGBA(g.Bounds(b))
	g.Draw(dst, img)
	return dst
}
