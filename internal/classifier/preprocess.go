package classifier

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const InputSize = 256

// MaxDimension bounds the width and height an upload may declare.
const MaxDimension = 8192

// Tensor is a dense float32 tensor in row-major order.
type Tensor struct {
	Shape []int
	Data  []float32
}

// Preprocess decodes an image and turns it into the model input: a
// [1, 256, 256, 1] grayscale tensor with values in [0, 1].
func Preprocess(data []byte) (Tensor, error) {
	if _, err := ImageFormat(data); err != nil {
		return Tensor{}, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Tensor{}, fmt.Errorf("%w: %w", ErrDecodeImage, err)
	}

	// image.Gray conversion uses the ITU-R 601 luma weights.
	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)

	resized := image.NewGray(image.Rect(0, 0, InputSize, InputSize))
	xdraw.BiLinear.Scale(resized, resized.Bounds(), gray, gray.Bounds(), xdraw.Src, nil)

	t := Tensor{
		Shape: []int{1, InputSize, InputSize, 1},
		Data:  make([]float32, InputSize*InputSize),
	}
	for y := 0; y < InputSize; y++ {
		row := resized.Pix[y*resized.Stride : y*resized.Stride+InputSize]
		for x, v := range row {
			t.Data[y*InputSize+x] = float32(v) / 255
		}
	}

	return t, nil
}

// ImageFormat reads only the image header and returns the registered format
// name ("png", "jpeg", ...). Images larger than MaxDimension on either side
// are rejected before any pixel is decoded.
func ImageFormat(data []byte) (string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return "", fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrDecodeImage, cfg.Width, cfg.Height, MaxDimension, MaxDimension)
	}
	return format, nil
}
