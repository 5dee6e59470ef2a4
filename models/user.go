package models

import "time"

// User is a guest account. PasswordHash is a bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Requester is the authenticated identity attached to every request by the
// auth middleware. The booking service trusts it and performs no credential
// checks of its own.
type Requester struct {
	ID    string
	Name  string
	Admin bool
}
