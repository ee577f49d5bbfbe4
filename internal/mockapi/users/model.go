package users

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	Mobile       string
	Profile      string
	PasswordHash []byte
	Role         int
	Status       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
