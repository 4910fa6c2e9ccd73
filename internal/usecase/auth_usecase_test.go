package usecase_test

import (
	"testing"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(t *testing.T, username string, password string) *usecase.AuthUsecase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	verifier := usecase.NewBcryptAdminVerifier(username, string(hash))
	return usecase.NewAuthUsecase(verifier, zap.NewNop())
}

func TestLogin_Success(t *testing.T) {
	uc := newAuthUsecase(t, "admin", "secret123")
	assert.NoError(t, uc.Login("admin", "secret123"))
}

func TestLogin_UniformFailure(t *testing.T) {
	uc := newAuthUsecase(t, "admin", "secret123")

	//usernameミスとpasswordミスで返りを区別しない
	errUser := uc.Login("root", "secret123")
	errPass := uc.Login("admin", "wrong")

	heUser, ok := usecase.AsHTTPError(errUser)
	assert.True(t, ok)
	hePass, ok := usecase.AsHTTPError(errPass)
	assert.True(t, ok)

	assert.Equal(t, 401, heUser.Status)
	assert.Equal(t, heUser, hePass)
	assert.Equal(t, "Invalid username or password", heUser.Message)
}
