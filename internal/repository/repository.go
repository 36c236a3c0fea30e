package repository

import (
	"context"
	"errors"
	"fmt"

	"strokescan/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")

type PredictionRepository struct {
	db Storage
}

func NewPredictionRepository(db Storage) *PredictionRepository {
	return &PredictionRepository{
		db: db,
	}
}

// MigrateAndSeed creates the users and predictions tables when missing and
// inserts the given seed users unless their usernames are already taken.
func (r *PredictionRepository) MigrateAndSeed(ctx context.Context, seed ...User) error {
	err := r.db.MigrateModels(&User{}, &Prediction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if len(seed) == 0 {
		return nil
	}

	err = r.db.Seed(ctx, &seed)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *PredictionRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.Create(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *PredictionRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *PredictionRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAll(ctx, &users, "id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// DeleteUser removes the user; their predictions go with them through the
// foreign key cascade. Removing an unknown username is not an error.
func (r *PredictionRepository) DeleteUser(ctx context.Context, username string) (bool, error) {
	n, err := r.db.DeleteBy(ctx, "username", username, &User{})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	return n > 0, nil
}

func (r *PredictionRepository) SavePrediction(ctx context.Context, prediction *Prediction) error {
	err := r.db.Create(ctx, prediction)
	if err != nil {
		return fmt.Errorf("save prediction: %w", err)
	}

	return nil
}

func (r *PredictionRepository) GetUserPredictions(ctx context.Context, userID uint) ([]Prediction, error) {
	predictions := []Prediction{}
	err := r.db.GetAllBy(ctx, "user_id", userID, &predictions)
	if err != nil {
		return nil, fmt.Errorf("get user predictions: %w", err)
	}

	return predictions, nil
}
