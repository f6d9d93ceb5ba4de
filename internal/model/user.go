package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id" bson:"_id" json:"id"`
	Name         string    `db:"name" bson:"name" json:"name"`
	Email        string    `db:"email" bson:"email" json:"email"`
	PasswordHash string    `db:"password_hash" bson:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" bson:"created_at" json:"createdAt"`
}
