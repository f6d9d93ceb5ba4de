package model

import (
	"time"
)

// Goal is a short text item owned by a single user. UserID is fixed at
// creation and never reassigned.
type Goal struct {
	ID        string    `db:"id" bson:"_id" json:"id"`
	UserID    string    `db:"user_id" bson:"user_id" json:"user"`
	Text      string    `db:"text" bson:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" bson:"updated_at" json:"updatedAt"`
}

// GoalUpdate carries the fields a client may change on an existing goal.
// A nil field is left untouched.
type GoalUpdate struct {
	Text *string
}
