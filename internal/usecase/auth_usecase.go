package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	//400 email重複
	ErrEmailTaken = errors.New("email already registered")
	//401 認証失敗（emailが無い場合もパスワード不一致も同じエラーにする）
	ErrInvalidCredentials = errors.New("invalid email or password")
	//401 トークンのsubがユーザーに解決できない
	ErrUnauthorized = errors.New("unauthorized")
	//500
	ErrInternal = errors.New("internal error")
)

// accesstokenの有効期限（30日）。失効だけが唯一の無効化手段。
const accessTokenTTL = 30 * 24 * time.Hour

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// register/login共通のレスポンス（token + user）
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type RegisterInput struct {
	Email    string
	Phone    string
	Name     string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase struct {
	cfg   *config.Config
	users repository.UserRepository
}

func NewAuthUsecase(cfg *config.Config, users repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{
		cfg:   cfg,
		users: users,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	//先に重複チェック（最終防衛はDBのunique制約）
	existing, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInternal
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrInternal
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Phone:        in.Phone,
		Name:         in.Name,
		PasswordHash: string(pwHash),
		CreatedAt:    time.Now(),
	}

	if err := u.users.Create(ctx, user); err != nil {
		//同時登録でunique制約に負けた場合も重複扱い
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, ErrInternal
	}

	token, err := u.issueToken(user.ID)
	if err != nil {
		return nil, ErrInternal
	}

	return &AuthResponse{Token: token, User: toUserDTO(user)}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*AuthResponse, error) {
	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(user.ID)
	if err != nil {
		return nil, ErrInternal
	}

	return &AuthResponse{Token: token, User: toUserDTO(user)}, nil
}

// Meはトークンのsubをユーザーに解決して公開ビューを返す
func (u *AuthUsecase) Me(ctx context.Context, userID string) (*UserDTO, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if user == nil {
		//削除済みアカウントなど
		return nil, ErrUnauthorized
	}

	dto := toUserDTO(user)
	return &dto, nil
}

// HS256で署名したアクセストークンを発行
func (u *AuthUsecase) issueToken(userID string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Phone: u.Phone,
		Name:  u.Name,
	}
}
