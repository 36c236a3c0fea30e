package core

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// AdminUsername is the one identity that holds the admin role.
const AdminUsername = "admin"

func RoleFor(username string) Role {
	if username == AdminUsername {
		return RoleAdmin
	}
	return RoleUser
}

// Session is the logged-in identity resolved from the session cookie.
type Session struct {
	UserID   uint
	Username string
	Role     Role
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type SignupMessage struct {
	Name     string
	Email    string
	Mobile   string
	Username string
	Password string
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserRecord struct {
	ID        uint
	Name      string
	Email     string
	Mobile    string
	Username  string
	CreatedAt time.Time
}

type PredictionRecord struct {
	ID        uint
	Label     string
	ImageName string
	ImageData string
	CreatedAt time.Time
}

type UserPredictions struct {
	User        UserRecord
	Predictions []PredictionRecord
}

type PredictionResult struct {
	Label     string
	ImageName string
}
