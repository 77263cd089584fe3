package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

// ContactUsecase は問い合わせの保存だけ。認証不要、読み出しも無い。
type ContactUsecase struct {
	contactRepo repo.ContactRepository
}

func NewContactUsecase(contactRepo repo.ContactRepository) *ContactUsecase {
	return &ContactUsecase{contactRepo: contactRepo}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (u *ContactUsecase) SubmitMessage(ctx context.Context, in SubmitMessageInput) error {
	msg := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}

	if err := u.contactRepo.Create(ctx, msg); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
