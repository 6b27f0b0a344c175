package models

import (
	"database/sql"
	"time"
)

// NewsletterSubscriber is a row of NEWSLETTER_SUBSCRIBERS.
type NewsletterSubscriber struct {
	ID        string         `db:"ID"`     // ULID
	Email     string         `db:"EMAIL"`  // lower-cased, unique
	Source    sql.NullString `db:"SOURCE"` // page section the signup came from
	CreatedAt time.Time      `db:"CREATED_AT"`
}

// TableName returns the table backing NewsletterSubscriber.
func (NewsletterSubscriber) TableName() string {
	return "NEWSLETTER_SUBSCRIBERS"
}
