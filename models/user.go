package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	EmailVerified bool      `json:"email_verified" bson:"email_verified"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
