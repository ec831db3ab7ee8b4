package model

import "time"

type Subscriber struct {
	ID               int       `db:"id"                json:"id"`
	Email            string    `db:"email"             json:"email"`
	UnsubscribeToken string    `db:"unsubscribe_token" json:"-"`
	CreatedAt        time.Time `db:"created_at"        json:"created_at"`
}
