package service

import (
	"context"
	"strings"

	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/logger"
	"autoworld/internal/util"

	"go.uber.org/zap"
)

const (
	subscribedButtonLabel    = "Subscribed!"
	subscribedButtonRevertMs = 2000
)

// NewsletterService records newsletter signups.
type NewsletterService interface {
	Subscribe(ctx context.Context, email, source string) (*dto.SubscribeResponse, error)
}

type newsletterServiceImpl struct {
	repo domain.SubscriberRepository
	tx   domain.TransactionManager
}

func NewNewsletterService(repo domain.SubscriberRepository, tx domain.TransactionManager) NewsletterService {
	return &newsletterServiceImpl{repo: repo, tx: tx}
}

// ValidateEmail applies the signup form rules to raw input.
func ValidateEmail(raw string) error {
	email := strings.TrimSpace(raw)
	if email == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("email", domain.MsgEmailRequired)}
	}
	if !domain.IsValidEmail(email) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("email", email, domain.MsgEmailInvalid)}
	}
	return nil
}

// Subscribe stores the address once; repeating a signup succeeds without a second row.
func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email, source string) (*dto.SubscribeResponse, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	subscriber := domain.NewSubscriber(util.NewULID(), email, source)
	if err := subscriber.Validate(); err != nil {
		return nil, err
	}

	already := false
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetByEmail(txCtx, subscriber.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			already = true
			return nil
		}
		return s.repo.Create(txCtx, subscriber)
	})
	if err != nil {
		logger.Get().Error("Failed to store newsletter subscriber", zap.Error(err))
		return nil, domain.NewInternalError("failed to subscribe", err)
	}

	if already {
		logger.Get().Info("Repeated newsletter signup", zap.String("source", source))
	} else {
		logger.Get().Info("New newsletter subscriber", zap.String("subscriberID", subscriber.ID), zap.String("source", source))
	}

	return &dto.SubscribeResponse{
		Message:           domain.WelcomeMessage(strings.TrimSpace(email)), // as typed; only storage is normalised
		AlreadySubscribed: already,
		ClearInput:        true,
		Button:            dto.ButtonFeedback{Label: subscribedButtonLabel, RevertAfterMs: subscribedButtonRevertMs},
	}, nil
}
