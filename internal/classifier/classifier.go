package classifier

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

var ErrDecodeImage error = errors.New("cannot decode image")
var ErrInference error = errors.New("inference failed")

const (
	LabelHemorrhagic = "hemorrhagic Brain Stroke"
	LabelIschaemic   = "ischaemic Brain Stroke"
	LabelNormal      = "normal"
)

// Labels maps the model's output index to its class name.
var Labels = []string{LabelHemorrhagic, LabelIschaemic, LabelNormal}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Model . Model
type Model interface {
	Predict(ctx context.Context, input Tensor) ([]float32, error)
}

//counterfeiter:generate -o fake -fake-name Observer . Observer
type Observer interface {
	ObserveInference(d time.Duration, err error)
}

type Classifier struct {
	logs     *zap.SugaredLogger
	model    Model
	observer Observer
}

func NewClassifier(logger *zap.SugaredLogger, model Model, observer Observer) *Classifier {
	return &Classifier{
		logs:     logger,
		model:    model,
		observer: observer,
	}
}

// Classify runs one forward pass over the image and returns the most probable label.
func (c *Classifier) Classify(ctx context.Context, data []byte) (string, error) {
	input, err := Preprocess(data)
	if err != nil {
		return "", err
	}

	start := time.Now()
	probs, err := c.model.Predict(ctx, input)
	if err == nil && len(probs) != len(Labels) {
		err = fmt.Errorf("model returned %d scores, want %d", len(probs), len(Labels))
	}
	c.observer.ObserveInference(time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInference, err)
	}

	idx := argmax(probs)
	c.logs.Debugw("image classified", "label", Labels[idx], "scores", probs)

	return Labels[idx], nil
}

// ImageFormat reports the format of an upload the classifier can accept.
func (c *Classifier) ImageFormat(data []byte) (string, error) {
	return ImageFormat(data)
}

func (c *Classifier) ClassifyFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image file: %w", err)
	}
	return c.Classify(ctx, data)
}

// argmax returns the first index holding the largest value.
func argmax(values []float32) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
