package usecase

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// 管理者資格情報を照合する約束。実装差し替えで複数管理者やローテーションに対応できる。
type CredentialVerifier interface {
	Verify(username string, password string) bool
}

// 設定された1管理者（username + bcryptハッシュ）に対するverifier
type BcryptAdminVerifier struct {
	username     string
	passwordHash string
}

func NewBcryptAdminVerifier(username string, passwordHash string) *BcryptAdminVerifier {
	return &BcryptAdminVerifier{
		username:     username,
		passwordHash: passwordHash,
	}
}

func (v *BcryptAdminVerifier) Verify(username string, password string) bool {
	//usernameが違ってもbcryptは回す（失敗パスの形を揃える）
	match := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	return username == v.username && match
}

type AuthUsecase struct {
	verifier CredentialVerifier
	logger   *zap.Logger
}

func NewAuthUsecase(verifier CredentialVerifier, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{verifier: verifier, logger: logger}
}

// Login は資格情報を照合する。usernameとpasswordのどちらが違っても同じ401を
// 返す（レスポンスからのusername列挙を防ぐ。理由はログにも書かない）。
func (u *AuthUsecase) Login(username string, password string) error {
	if !u.verifier.Verify(username, password) {
		u.logger.Warn("admin login rejected")
		return NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	}
	return nil
}
