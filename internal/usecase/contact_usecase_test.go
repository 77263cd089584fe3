package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ContactRepoMock struct{ mock.Mock }

func (m *ContactRepoMock) Create(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestContactUsecase_SubmitMessage(t *testing.T) {
	ctx := context.Background()

	cRepo := new(ContactRepoMock)
	uc := usecase.NewContactUsecase(cRepo)

	var saved *model.ContactMessage
	cRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.ContactMessage)
		}).
		Return(nil)

	err := uc.SubmitMessage(ctx, usecase.SubmitMessageInput{
		Name:    "User A",
		Email:   "a@example.com",
		Phone:   "9999999999",
		Message: "Is this in stock?",
	})

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "User A", saved.Name)
	assert.Equal(t, "Is this in stock?", saved.Message)
	assert.False(t, saved.CreatedAt.IsZero())
}
