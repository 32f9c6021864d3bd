package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	FullName  string             `bson:"full_name" json:"full_name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	LastLogin time.Time          `bson:"last_login" json:"last_login"`
}

// AuthUser is the identity shape handed to clients after session resolution.
type AuthUser struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	JoinDate time.Time `json:"join_date"`
}

// DisplayName resolves the user's visible name: stored full name, then the
// local part of the email, then "User".
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "User"
}

// ToAuthUser maps a stored user to the client-facing identity.
func (u *User) ToAuthUser() AuthUser {
	return AuthUser{
		ID:       u.ID.Hex(),
		Email:    u.Email,
		Name:     u.DisplayName(),
		JoinDate: u.CreatedAt,
	}
}
