package models

import "time"

// User is an account in the identity layer. UID is the opaque subject id
// carried in bearer tokens and stamped onto reviews as userId.
type User struct {
	UID           string    `bson:"uid" json:"uid"`
	Email         string    `bson:"email" json:"email"`
	Password      string    `bson:"password" json:"-"`
	EmailVerified bool      `bson:"emailVerified" json:"emailVerified"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
