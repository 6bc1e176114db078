package canvas

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/webp" // WebP logos are converted to PNG
)

// ImageInfo describes a decoded image header.
type ImageInfo struct {
	Type   string // fpdf image type: "PNG", "JPG" or "GIF"
	Width  int
	Height int
}

// Ratio returns height/width, or 0 for an empty image.
func (i ImageInfo) Ratio() float64 {
	if i.Width == 0 {
		return 0
	}
	return float64(i.Height) / float64(i.Width)
}

// Normalize inspects encoded image bytes and returns data fpdf can embed.
// PNG, JPEG and GIF pass through untouched; WebP is decoded and re-encoded
// as PNG. Any other input is rejected with ErrImage.
func Normalize(data []byte) ([]byte, ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ImageInfo{}, fmt.Errorf("%w: %v", ErrImage, err)
	}
	info := ImageInfo{Width: cfg.Width, Height: cfg.Height}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, info, fmt.Errorf("%w: empty image", ErrImage)
	}

	switch format {
	case "png":
		info.Type = "PNG"
		return data, info, nil
	case "jpeg":
		info.Type = "JPG"
		return data, info, nil
	case "gif":
		info.Type = "GIF"
		return data, info, nil
	case "webp":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, info, fmt.Errorf("%w: webp: %v", ErrImage, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, info, fmt.Errorf("%w: webp to png: %v", ErrImage, err)
		}
		info.Type = "PNG"
		return buf.Bytes(), info, nil
	}
	return nil, info, fmt.Errorf("%w: unsupported format %q", ErrImage, format)
}
