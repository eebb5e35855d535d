package user

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	MobileNumber string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
