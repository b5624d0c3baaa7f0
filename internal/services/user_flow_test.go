package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ailawatlas/catalog_service/internal/apperr"
	"github.com/ailawatlas/catalog_service/internal/domain"
	"github.com/ailawatlas/catalog_service/internal/dto"
	"github.com/ailawatlas/catalog_service/internal/helper"
	"github.com/ailawatlas/catalog_service/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// fakeUserRepo keeps accounts in a map so a whole flow can run against one
// store without a database.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, fmt.Errorf("failed to create user: %w", &pgconn.PgError{Code: "23505"})
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindUserById(ctx context.Context, userID uint) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) SaveUser(ctx context.Context, user *domain.User) error {
	f.users[user.Email] = user
	return nil
}

type recordingNotifier struct {
	email string
	code  string
}

func (r *recordingNotifier) SendVerificationCode(ctx context.Context, email, code string) error {
	r.email = email
	r.code = code
	return nil
}

func TestUserService_FullRegistrationFlow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	notifier := &recordingNotifier{}
	auth := helper.SetupAuth("test-secret")
	svc := NewUserService(repo, notifier, auth)

	// register
	err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "pw1pw1"})
	assert.NoError(t, err)

	pending, err := repo.FindUserByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.False(t, pending.IsVerified)
	assert.NotNil(t, pending.VerificationCode)
	assert.Regexp(t, codePattern, *pending.VerificationCode)
	assert.Equal(t, "a@x.com", notifier.email)
	assert.Equal(t, *pending.VerificationCode, notifier.code)

	// registering the same email again is rejected
	err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "other-pw"})
	assert.True(t, apperr.Is(err, apperr.ErrAccountExists))

	// login before verification
	_, err = svc.Login(ctx, dto.UserLogin{Email: "a@x.com", Password: "pw1pw1"})
	assert.True(t, apperr.Is(err, apperr.ErrNotVerified))

	// wrong code
	_, err = svc.VerifyEmail(ctx, "a@x.com", "000000")
	assert.True(t, apperr.Is(err, apperr.ErrInvalidCode))
	assert.False(t, pending.IsVerified)
	assert.NotNil(t, pending.VerificationCode)

	// correct code
	already, err := svc.VerifyEmail(ctx, "a@x.com", notifier.code)
	assert.NoError(t, err)
	assert.False(t, already)
	assert.True(t, pending.IsVerified)
	assert.Nil(t, pending.VerificationCode)

	// verifying again is an idempotent no-op
	already, err = svc.VerifyEmail(ctx, "a@x.com", notifier.code)
	assert.NoError(t, err)
	assert.True(t, already)

	// login with the right password
	token, err := svc.Login(ctx, dto.UserLogin{Email: "a@x.com", Password: "pw1pw1"})
	assert.NoError(t, err)

	claims, err := auth.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, int(pending.ID), claims.UserID)

	// token expires within an hour of issuance
	assert.InDelta(t, float64(time.Now().Add(helper.TokenTTL).Unix()), claims.Expiry, 5)

	// wrong password after verification
	_, err = svc.Login(ctx, dto.UserLogin{Email: "a@x.com", Password: "wrongpw"})
	assert.True(t, apperr.Is(err, apperr.ErrInvalidCredentials))
}
