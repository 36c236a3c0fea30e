package core

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"strokescan/internal/repository"
	tokenIssuer "strokescan/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserExists error = errors.New("user already exists")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrInvalidSession error = errors.New("invalid session")
var ErrInvalidImageName error = errors.New("invalid image name")

// StrokeScan ties users, sessions, uploads and the classifier together.
type StrokeScan struct {
	logs       *zap.SugaredLogger
	repo       Repository
	sessions   SessionIssuer
	classifier Classifier
	images     ImageStore
	sessionTTL time.Duration
}

func NewStrokeScan(
	logger *zap.SugaredLogger,
	repo Repository,
	sessions SessionIssuer,
	classifier Classifier,
	images ImageStore,
	sessionTTL time.Duration,
) *StrokeScan {
	return &StrokeScan{
		logs:       logger,
		repo:       repo,
		sessions:   sessions,
		classifier: classifier,
		images:     images,
		sessionTTL: sessionTTL,
	}
}

// NewAdminUser builds the admin account inserted at startup.
func NewAdminUser(password string) (repository.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, fmt.Errorf("hash admin password: %w", err)
	}

	return repository.User{
		Name:         AdminUsername,
		Username:     AdminUsername,
		PasswordHash: string(hash),
	}, nil
}

// Signup registers a new user. A taken username yields ErrUserExists.
func (s *StrokeScan) Signup(ctx context.Context, msg SignupMessage) error {
	_, err := s.repo.GetUser(ctx, msg.Username)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Name:         msg.Name,
		Email:        msg.Email,
		Mobile:       msg.Mobile,
		Username:     msg.Username,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user signed up", "username", user.Username, "userId", user.ID)
	return nil
}

// Authenticate checks the credentials and issues a signed session token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *StrokeScan) Authenticate(ctx context.Context, msg AuthMessage) (Session, string, error) {
	user, err := s.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, "", ErrInvalidCredentials
		}
		return Session{}, "", fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return Session{}, "", ErrInvalidCredentials
	}

	session := Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     RoleFor(user.Username),
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   session.Username,
		Subject:    strconv.FormatUint(uint64(session.UserID), 10),
		Role:       string(session.Role),
		Expiration: s.sessionTTL,
	}
	token := s.sessions.Generate(tokenInfo)
	signed, err := s.sessions.Sign(token)
	if err != nil {
		return Session{}, "", fmt.Errorf("signing token: %w", err)
	}

	return session, signed, nil
}

// ResolveSession turns a session token back into a Session. The user must
// still exist; tokens of removed users are rejected.
func (s *StrokeScan) ResolveSession(ctx context.Context, token string) (Session, error) {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		return Session{}, fmt.Errorf("validate session token: %w: %w", err, ErrInvalidSession)
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || username == "" {
		return Session{}, fmt.Errorf("malformed session claims: %w", ErrInvalidSession)
	}

	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, fmt.Errorf("session user %q: %w", username, ErrInvalidSession)
		}
		return Session{}, fmt.Errorf("get user: %w", err)
	}
	if uint64(user.ID) != userID {
		return Session{}, fmt.Errorf("session user %q was recreated: %w", username, ErrInvalidSession)
	}

	return Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     RoleFor(user.Username),
	}, nil
}

// Predict classifies the upload and records the prediction for the session
// user. The image is stored under a generated name whose extension follows
// the decoded format; filename is only logged. Nothing is stored for uploads
// the classifier rejects.
func (s *StrokeScan) Predict(ctx context.Context, session Session, filename string, image []byte) (PredictionResult, error) {
	format, err := s.classifier.ImageFormat(image)
	if err != nil {
		return PredictionResult{}, fmt.Errorf("inspect upload: %w", err)
	}

	label, err := s.classifier.Classify(ctx, image)
	if err != nil {
		return PredictionResult{}, fmt.Errorf("classify upload: %w", err)
	}

	name := uuid.NewString() + "." + format
	if err := s.images.Save(ctx, name, image); err != nil {
		return PredictionResult{}, fmt.Errorf("store upload: %w", err)
	}

	prediction := repository.Prediction{
		UserID:    session.UserID,
		Label:     label,
		ImageName: name,
		ImageData: base64.StdEncoding.EncodeToString(image),
	}
	if err := s.repo.SavePrediction(ctx, &prediction); err != nil {
		return PredictionResult{}, fmt.Errorf("save prediction: %w", err)
	}

	s.logs.Infow("prediction saved",
		"userId", session.UserID,
		"label", label,
		"image", name,
		"filename", filename,
	)

	return PredictionResult{
		Label:     label,
		ImageName: name,
	}, nil
}

// OpenUpload returns the stored upload called name.
func (s *StrokeScan) OpenUpload(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, ErrInvalidImageName
	}

	rc, err := s.images.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	return rc, nil
}

// UsersWithPredictions lists every user in insertion order with their prediction history.
func (s *StrokeScan) UsersWithPredictions(ctx context.Context) ([]UserPredictions, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]UserPredictions, 0, len(users))
	for _, u := range users {
		predictions, err := s.repo.GetUserPredictions(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("get predictions of %q: %w", u.Username, err)
		}

		result = append(result, UserPredictions{
			User:        toUserRecord(u),
			Predictions: toPredictionRecords(predictions),
		})
	}

	return result, nil
}

// RemoveUser deletes the user and their predictions. Unknown usernames are ignored.
func (s *StrokeScan) RemoveUser(ctx context.Context, username string) error {
	removed, err := s.repo.DeleteUser(ctx, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if !removed {
		s.logs.Infow("remove user: no such user", "username", username)
		return nil
	}

	s.logs.Infow("user removed", "username", username)
	return nil
}

func toUserRecord(u repository.User) UserRecord {
	return UserRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func toPredictionRecords(predictions []repository.Prediction) []PredictionRecord {
	records := make([]PredictionRecord, len(predictions))
	for i, p := range predictions {
		records[i] = PredictionRecord{
			ID:        p.ID,
			Label:     p.Label,
			ImageName: p.ImageName,
			ImageData: p.ImageData,
			CreatedAt: p.CreatedAt,
		}
	}
	return records
}
