package service

import (
	"context"
	"errors"
	"testing"

	"scorekeeper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_Register_Success(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	service := NewAccountService(mockUserRepo)

	created := &models.User{ID: 1, Username: "alice"}

	mockUserRepo.On("GetByUsername", ctx, "alice").Return(nil, nil)
	mockUserRepo.On("Create", ctx, "alice", mock.MatchedBy(func(hash string) bool {
		// The stored hash must verify against the submitted password and
		// must not be the plaintext itself
		return hash != "hunter22secret" &&
			bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22secret")) == nil
	})).Return(created, nil)

	user, err := service.Register(ctx, "alice", "hunter22secret", "hunter22secret")

	assert.NoError(t, err)
	assert.Equal(t, created, user)
	mockUserRepo.AssertExpectations(t)
}

func TestAccountService_Register_PasswordMismatch(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	service := NewAccountService(mockUserRepo)

	user, err := service.Register(ctx, "alice", "password1", "password2")

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Nil(t, user)
	// No lookup and no account created on mismatch
	mockUserRepo.AssertNotCalled(t, "GetByUsername")
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestAccountService_Register_MismatchWinsOverTakenUsername(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	service := NewAccountService(mockUserRepo)

	// Username exists AND passwords differ: the mismatch error is reported
	user, err := service.Register(ctx, "taken", "password1", "password2")

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "GetByUsername")
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	service := NewAccountService(mockUserRepo)

	existing := &models.User{ID: 7, Username: "alice"}
	mockUserRepo.On("GetByUsername", ctx, "alice").Return(existing, nil)

	user, err := service.Register(ctx, "alice", "samepassword", "samepassword")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestAccountService_Register_LookupFailure(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	service := NewAccountService(mockUserRepo)

	mockUserRepo.On("GetByUsername", ctx, "alice").Return(nil, errors.New("connection refused"))

	user, err := service.Register(ctx, "alice", "samepassword", "samepassword")

	assert.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.Nil(t, user)
}

func TestAccountService_Authenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	stored := &models.User{ID: 3, Username: "bob", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewAccountService(mockUserRepo)
		mockUserRepo.On("GetByUsername", ctx, "bob").Return(stored, nil)

		user, err := service.Authenticate(ctx, "bob", "correcthorse")
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewAccountService(mockUserRepo)
		mockUserRepo.On("GetByUsername", ctx, "bob").Return(stored, nil)

		user, err := service.Authenticate(ctx, "bob", "batterystaple")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewAccountService(mockUserRepo)
		mockUserRepo.On("GetByUsername", ctx, "nobody").Return(nil, nil)

		user, err := service.Authenticate(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	service := NewAccountService(mockUserRepo)

	mockUserRepo.On("Delete", ctx, int64(3)).Return(nil)

	err := service.Delete(ctx, 3)
	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}
