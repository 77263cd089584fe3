package repository

import (
	"context"

	"app/internal/domain/model"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
}
