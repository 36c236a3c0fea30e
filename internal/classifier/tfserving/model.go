package tfserving

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"strokescan/internal/classifier"
)

var ErrModelUnavailable error = errors.New("model is not available")

const stateAvailable = "AVAILABLE"

// Doer is the part of *http.Client the model needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Model calls a TensorFlow Serving REST endpoint.
type Model struct {
	client  Doer
	baseURL string
	name    string
}

func NewModel(client Doer, baseURL, name string) *Model {
	return &Model{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		name:    name,
	}
}

type predictRequest struct {
	Instances any `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float32 `json:"predictions"`
	Error       string      `json:"error"`
}

type statusResponse struct {
	ModelVersionStatus []struct {
		Version string `json:"version"`
		State   string `json:"state"`
	} `json:"model_version_status"`
	Error string `json:"error"`
}

// Load verifies that the server has a version of the model ready to serve.
func (m *Model) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.modelURL(""), nil)
	if err != nil {
		return fmt.Errorf("new status request: %w", err)
	}

	var status statusResponse
	if err := m.do(req, &status); err != nil {
		return fmt.Errorf("get model status: %w", err)
	}

	for _, v := range status.ModelVersionStatus {
		if v.State == stateAvailable {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrModelUnavailable, m.name)
}

// Predict sends one instance and returns the model's score vector for it.
func (m *Model) Predict(ctx context.Context, input classifier.Tensor) ([]float32, error) {
	instance, err := nest(input)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(predictRequest{Instances: instance})
	if err != nil {
		return nil, fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.modelURL(":predict"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp predictResponse
	if err := m.do(req, &resp); err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	if len(resp.Predictions) != 1 {
		return nil, fmt.Errorf("expected 1 prediction, got %d", len(resp.Predictions))
	}

	return resp.Predictions[0], nil
}

func (m *Model) modelURL(suffix string) string {
	return m.baseURL + "/v1/models/" + url.PathEscape(m.name) + suffix
}

func (m *Model) do(req *http.Request, dest any) error {
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return fmt.Errorf("model server returned %d: %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("model server returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// nest reshapes a [1, H, W, C] tensor into the nested arrays TF Serving expects.
func nest(t classifier.Tensor) ([][][][]float32, error) {
	if len(t.Shape) != 4 || t.Shape[0] != 1 {
		return nil, fmt.Errorf("unsupported input shape %v", t.Shape)
	}
	h, w, c := t.Shape[1], t.Shape[2], t.Shape[3]
	if len(t.Data) != h*w*c {
		return nil, fmt.Errorf("input has %d values, shape %v needs %d", len(t.Data), t.Shape, h*w*c)
	}

	rows := make([][][]float32, h)
	for y := range rows {
		rows[y] = make([][]float32, w)
		for x := range rows[y] {
			off := (y*w + x) * c
			rows[y][x] = t.Data[off : off+c]
		}
	}
	return [][][][]float32{rows}, nil
}
