package core

import (
	"context"
	"io"

	"strokescan/internal/repository"
	tokenIssuer "strokescan/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	DeleteUser(ctx context.Context, username string) (bool, error)
	SavePrediction(ctx context.Context, prediction *repository.Prediction) error
	GetUserPredictions(ctx context.Context, userID uint) ([]repository.Prediction, error)
}

//counterfeiter:generate -o fake -fake-name SessionIssuer . SessionIssuer
type SessionIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Classifier . Classifier
type Classifier interface {
	ImageFormat(image []byte) (string, error)
	Classify(ctx context.Context, image []byte) (string, error)
}

//counterfeiter:generate -o fake -fake-name ImageStore . ImageStore
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
