package services

import (
	"testing"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthService テスト用のAuthServiceを作成
func newAuthService(t *testing.T) AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), NewFileService(newTestConfig(t)))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(RegisterInput{
		FullName:        "Taro Yamada",
		Email:           "taro@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "090-0000-0000",
		Bio:             "hello",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.DefaultProfileImage, user.ProfileImage)
	// 平文パスワードは保存されない
	assert.NotEqual(t, "secret1", user.PasswordHash)

	// 同じ資格情報でログインできる
	loggedIn, err := svc.Login("taro@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input RegisterInput
	}{
		{
			name:  "必須項目が空",
			input: RegisterInput{Email: "a@example.com", Password: "secret1", ConfirmPassword: "secret1"},
		},
		{
			name:  "確認パスワード不一致",
			input: RegisterInput{FullName: "A", Email: "a@example.com", Password: "secret1", ConfirmPassword: "secret2"},
		},
		{
			name:  "パスワードが短い",
			input: RegisterInput{FullName: "A", Email: "a@example.com", Password: "abc12", ConfirmPassword: "abc12"},
		},
		{
			name:  "メールアドレスの形式不正",
			input: RegisterInput{FullName: "A", Email: "not-an-email", Password: "secret1", ConfirmPassword: "secret1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService(t)
			_, err := svc.Register(tt.input)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	input := RegisterInput{
		FullName:        "Taro Yamada",
		Email:           "taro@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	_, err := svc.Register(input)
	require.NoError(t, err)

	// 他のフィールドが違っても同じメールアドレスは拒否される
	input.FullName = "Jiro Yamada"
	input.Password = "another1"
	input.ConfirmPassword = "another1"
	_, err = svc.Register(input)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicateEmail, apperrors.KindOf(err))
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(RegisterInput{
		FullName:        "Taro Yamada",
		Email:           "taro@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	// 存在しないメールアドレス
	_, err = svc.Login("nobody@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNoSuchAccount, apperrors.KindOf(err))

	// パスワード誤り
	_, err = svc.Login("taro@example.com", "wrongpass")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindBadPassword, apperrors.KindOf(err))
}

func TestRegisterWithProfileImage(t *testing.T) {
	svc := newAuthService(t)

	file, header := newUpload("me.png", []byte("png-bytes"))
	user, err := svc.Register(RegisterInput{
		FullName:        "Taro Yamada",
		Email:           "taro@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		ProfileImage:    file,
		ProfileHeader:   header,
	})
	require.NoError(t, err)
	assert.NotEqual(t, models.DefaultProfileImage, user.ProfileImage)
	assert.Contains(t, user.ProfileImage, ".png")
}
