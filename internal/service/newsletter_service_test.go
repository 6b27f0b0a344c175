package service

import (
	"context"
	"errors"
	"testing"

	"autoworld/internal/domain"
	"autoworld/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewsletterService_Subscribe_Validation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		code    domain.ErrorCode
		message string
	}{
		{"empty", "", domain.CodeMissingField, domain.MsgEmailRequired},
		{"whitespace", "   ", domain.CodeMissingField, domain.MsgEmailRequired},
		{"no domain", "driver@", domain.CodeInvalidFormat, domain.MsgEmailInvalid},
		{"space inside", "dri ver@auto.com", domain.CodeInvalidFormat, domain.MsgEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSubscriberRepository)
			svc := NewNewsletterService(repo, &MockTransactionManager{})

			resp, err := svc.Subscribe(context.Background(), tt.email, "")
			assert.Nil(t, resp)
			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.code, verrs[0].Code)
			assert.Equal(t, tt.message, verrs[0].Message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestNewsletterService_Subscribe_New(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("GetByEmail", mock.Anything, "fan@autoworld.com").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Subscriber) bool {
		return s.Email == "fan@autoworld.com" && s.Source == "footer" && s.ID != ""
	})).Return(nil).Once()

	svc := NewNewsletterService(repo, &MockTransactionManager{})
	resp, err := svc.Subscribe(context.Background(), "  Fan@AutoWorld.com ", "footer")
	require.NoError(t, err)
	assert.False(t, resp.AlreadySubscribed)
	assert.True(t, resp.ClearInput)
	assert.Equal(t, "🎉 Thank you for subscribing! Welcome to AutoWorld Newsletter, Fan@AutoWorld.com!", resp.Message)
	assert.Equal(t, "Subscribed!", resp.Button.Label)
	assert.Equal(t, int64(2000), resp.Button.RevertAfterMs)
	repo.AssertExpectations(t)
}

func TestNewsletterService_Subscribe_Repeat(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("GetByEmail", mock.Anything, "fan@autoworld.com").
		Return(&domain.Subscriber{ID: "existing", Email: "fan@autoworld.com"}, nil).Once()

	svc := NewNewsletterService(repo, &MockTransactionManager{})
	resp, err := svc.Subscribe(context.Background(), "fan@autoworld.com", "")
	require.NoError(t, err)
	assert.True(t, resp.AlreadySubscribed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewsletterService_Subscribe_RepositoryError(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("db gone")).Once()

	svc := NewNewsletterService(repo, &MockTransactionManager{})
	_, err := svc.Subscribe(context.Background(), "fan@autoworld.com", "")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestNewsletterService_Subscribe_MemoryRepository(t *testing.T) {
	repo := repository.NewMemorySubscriberRepository()
	svc := NewNewsletterService(repo, repository.NewLocalTransactionManager())

	first, err := svc.Subscribe(context.Background(), "fan@autoworld.com", "")
	require.NoError(t, err)
	second, err := svc.Subscribe(context.Background(), "FAN@autoworld.com", "")
	require.NoError(t, err)

	assert.False(t, first.AlreadySubscribed)
	assert.True(t, second.AlreadySubscribed)
	assert.Equal(t, 1, repo.Len())
}
