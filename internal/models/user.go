package models

import "time"

// User is a dashboard operator account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// LoginRequest is the body of a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginData is returned on successful login
type LoginData struct {
	IsLoggedIn int    `json:"is_logged_in"`
	Token      string `json:"token"`
}
