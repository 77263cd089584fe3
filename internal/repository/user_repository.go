package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// emailのunique制約違反をusecaseへ伝える
var ErrDuplicateEmail = errors.New("duplicate email")

// 保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。email重複はErrDuplicateEmail。
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。見つからなければnil。
	FindByID(ctx context.Context, userID string) (*model.User, error)
	// メールからユーザーを1件取得する。見つからなければnil。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
