package services

import (
	"context"
	"log"
	"strings"

	"github.com/ailawatlas/catalog_service/internal/apperr"
	"github.com/ailawatlas/catalog_service/internal/domain"
	"github.com/ailawatlas/catalog_service/internal/dto"
	"github.com/ailawatlas/catalog_service/internal/helper"
	"github.com/ailawatlas/catalog_service/internal/helper/utils"
	"github.com/ailawatlas/catalog_service/internal/interfaces"
	"github.com/ailawatlas/catalog_service/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, input dto.RegisterRequest) error
	// VerifyEmail reports whether the account had already been verified
	// before this call; verifying twice with the right code is not an error.
	VerifyEmail(ctx context.Context, email, code string) (alreadyVerified bool, err error)
	Login(ctx context.Context, input dto.UserLogin) (string, error)
	GetUser(ctx context.Context, userID uint) (*domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	notifier interfaces.VerificationNotifier
	auth     helper.Auth
}

func NewUserService(
	repo repository.UserRepository,
	notifier interfaces.VerificationNotifier,
	auth helper.Auth,
) UserService {
	return &userService{
		repo:     repo,
		notifier: notifier,
		auth:     auth,
	}
}

func (u *userService) Register(ctx context.Context, input dto.RegisterRequest) error {
	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return apperr.ErrInvalidInput
	}
	if len(password) < 6 {
		return apperr.New(apperr.ErrInvalidInput.Code, "password must be at least 6 characters", nil)
	}

	// courtesy check only; the uniqueIndex on email is what actually
	// decides a race between two registrations
	if existing, err := u.repo.FindUserByEmail(ctx, email); err == nil && existing != nil && existing.ID != 0 {
		return apperr.ErrAccountExists
	}

	passwordHash, err := u.auth.HashPassword(password)
	if err != nil {
		return apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}

	newUser := &domain.User{
		Email:            email,
		PasswordHash:     passwordHash,
		IsVerified:       false,
		VerificationCode: &code,
	}

	usr, err := u.repo.CreateUser(ctx, newUser)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return apperr.ErrAccountExists
		}
		return apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}

	// the account is durably created at this point; code delivery is
	// best-effort and a failure must not roll registration back
	if u.notifier != nil {
		if err := u.notifier.SendVerificationCode(ctx, usr.Email, code); err != nil {
			log.Printf("verification code delivery failed for user %d: %v", usr.ID, err)
		}
	}

	return nil
}

func (u *userService) VerifyEmail(ctx context.Context, email, code string) (bool, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)

	if email == "" || code == "" {
		return false, apperr.ErrInvalidInput
	}

	user, err := u.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return false, apperr.ErrAccountNotFound
		}
		return false, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}

	if user.IsVerified {
		return true, nil
	}

	if user.VerificationCode == nil || *user.VerificationCode != code {
		return false, apperr.ErrInvalidCode
	}

	user.IsVerified = true
	user.VerificationCode = nil
	if err := u.repo.SaveUser(ctx, user); err != nil {
		return false, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}

	return false, nil
}

func (u *userService) Login(ctx context.Context, input dto.UserLogin) (string, error) {
	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return "", apperr.ErrInvalidCredentials
	}

	// unknown email and wrong password collapse into the same error so a
	// caller cannot probe which emails are registered
	user, err := u.repo.FindUserByEmail(ctx, email)
	if err != nil || user == nil || user.ID == 0 {
		return "", apperr.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return "", apperr.ErrNotVerified
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := u.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}

	return token, nil
}

func (u *userService) GetUser(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := u.repo.FindUserById(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperr.ErrAccountNotFound
		}
		return nil, apperr.New(apperr.ErrInternal.Code, apperr.ErrInternal.Message, err)
	}
	return user, nil
}
