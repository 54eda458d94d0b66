package files

import (
	"bytes"
	"image"
	_ "image/gif"  // needed to decode gif covers
	_ "image/jpeg" // needed to decode jpeg covers
	"image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/webp" // needed to decode webp
)

// NormalizeImage decodes a jpeg, png, gif or webp image and re-encodes it as PNG,
// the one format both export targets accept.
func NormalizeImage(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode image")
	}

	if format == "png" {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrapf(err, "could not re-encode %s image", format)
	}

	return buf.Bytes(), nil
}
