package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"autoworld/internal/domain"
	"autoworld/internal/repository/models"
	"autoworld/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxSubscriberRepository implements domain.SubscriberRepository using sqlx.
type sqlxSubscriberRepository struct {
	db *sqlx.DB
}

// NewSQLXSubscriberRepository creates a new subscriber repository on db.
func NewSQLXSubscriberRepository(db *sqlx.DB) domain.SubscriberRepository {
	return &sqlxSubscriberRepository{db: db}
}

func toDomainSubscriber(m *models.NewsletterSubscriber) *domain.Subscriber {
	if m == nil {
		return nil
	}
	return &domain.Subscriber{
		ID:        m.ID,
		Email:     m.Email,
		Source:    util.NullStringToString(m.Source),
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainSubscriber(s *domain.Subscriber) *models.NewsletterSubscriber {
	if s == nil {
		return nil
	}
	return &models.NewsletterSubscriber{
		ID:        s.ID,
		Email:     s.Email,
		Source:    util.StringToNullString(s.Source),
		CreatedAt: s.CreatedAt,
	}
}

// GetByEmail returns nil, nil when the address is not subscribed.
func (r *sqlxSubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var row models.NewsletterSubscriber
	query := `SELECT ID, EMAIL, SOURCE, CREATED_AT FROM NEWSLETTER_SUBSCRIBERS WHERE EMAIL = :1`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscriber by email: %w", err)
	}
	return toDomainSubscriber(&row), nil
}

// Create inserts a new subscriber.
func (r *sqlxSubscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	query := `INSERT INTO NEWSLETTER_SUBSCRIBERS (ID, EMAIL, SOURCE, CREATED_AT)
	          VALUES (:ID, :EMAIL, :SOURCE, :CREATED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainSubscriber(s)); err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

// MemorySubscriberRepository keeps subscribers in process memory when no database is configured.
type MemorySubscriberRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Subscriber
}

func NewMemorySubscriberRepository() *MemorySubscriberRepository {
	return &MemorySubscriberRepository{byEmail: make(map[string]domain.Subscriber)}
}

func (r *MemorySubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *MemorySubscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[s.Email]; exists {
		return fmt.Errorf("failed to create subscriber: email %s already exists", s.Email)
	}
	r.byEmail[s.Email] = *s
	return nil
}

// Len returns the number of stored subscribers.
func (r *MemorySubscriberRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
