package domain

import "context"

// SubscriberRepository persists newsletter signups.
type SubscriberRepository interface {
	// GetByEmail returns nil, nil when no subscriber has the (normalised) address.
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	Create(ctx context.Context, s *Subscriber) error
}

// TransactionManager runs fn inside one unit of work; repositories pick the
// transaction up from the context passed to fn.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
