package repository

import "time"

type User struct {
	ID           uint         `gorm:"primaryKey"`
	Name         string       `gorm:"type:varchar(255)"`
	Email        string       `gorm:"type:varchar(255)"`
	Mobile       string       `gorm:"type:varchar(32)"`
	Username     string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string       `gorm:"not null"`
	CreatedAt    time.Time
	Predictions  []Prediction `gorm:"constraint:OnDelete:CASCADE"`
}

type Prediction struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Label     string `gorm:"type:varchar(64);not null"`
	ImageName string `gorm:"type:varchar(255)"`
	ImageData string `gorm:"type:text;not null"` // base64 encoded upload
	CreatedAt time.Time
}
