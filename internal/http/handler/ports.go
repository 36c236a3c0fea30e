package handler

import (
	"context"
	"io"
	"net/http"

	"strokescan/internal/core"
	"strokescan/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name StrokeService . StrokeService
type StrokeService interface {
	Signup(ctx context.Context, msg core.SignupMessage) error
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.Session, string, error)
	Predict(ctx context.Context, session core.Session, filename string, image []byte) (core.PredictionResult, error)
	OpenUpload(ctx context.Context, name string) (io.ReadCloser, error)
	UsersWithPredictions(ctx context.Context) ([]core.UserPredictions, error)
	RemoveUser(ctx context.Context, username string) error
}

//counterfeiter:generate -o fake -fake-name PredictionObserver . PredictionObserver
type PredictionObserver interface {
	ObservePrediction(label string)
}

type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, object payload.FormPayload) error
}

type Renderer interface {
	Render(w io.Writer, page string, data any) error
}
