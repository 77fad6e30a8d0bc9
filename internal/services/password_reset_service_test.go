package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haolaplus/internal/models"
)

func newResetService(codes *mockResetCodeRepo, users *mockUserRepo, emails *mockEmailService) PasswordResetService {
	return NewPasswordResetService(codes, users, NewAuthService(), emails, nil)
}

func TestForgotPassword_EmailInconnu(t *testing.T) {
	users := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) { return nil, nil },
	}
	svc := newResetService(&mockResetCodeRepo{}, users, &mockEmailService{})

	_, err := svc.ForgotPassword("inconnu@exemple.com", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForgotPassword_RemplaceEtEnvoie(t *testing.T) {
	email := "a@x.com"
	users := &mockUserRepo{
		GetByEmailFn: func(string) (*models.User, error) {
			return &models.User{ID: 7, Email: &email, DefaultAuth: models.AuthChannelEmail}, nil
		},
	}
	var replacedWith string
	codes := &mockResetCodeRepo{
		ReplaceFn: func(em, code string) (*models.ResetCodePassword, error) {
			replacedWith = code
			return &models.ResetCodePassword{ID: 1, Email: em, Code: code, CreatedAt: time.Now()}, nil
		},
	}
	var sentCode string
	emails := &mockEmailService{
		SendResetCodeFn: func(em, code string) error {
			sentCode = code
			return nil
		},
	}

	rc, err := newResetService(codes, users, emails).ForgotPassword(email, "")
	require.NoError(t, err)
	assert.Len(t, rc.Code, 6)
	assert.Equal(t, replacedWith, sentCode)
}

func TestForgotPassword_ParcoursDeRecette(t *testing.T) {
	email := "qa@x.com"
	users := &mockUserRepo{
		GetByEmailFn: func(string) (*models.User, error) {
			return &models.User{ID: 8, Email: &email, DefaultAuth: models.AuthChannelEmail}, nil
		},
	}
	codes := &mockResetCodeRepo{
		ReplaceFn: func(em, code string) (*models.ResetCodePassword, error) {
			return &models.ResetCodePassword{ID: 2, Email: em, Code: code, CreatedAt: time.Now()}, nil
		},
	}
	emails := &mockEmailService{SendResetCodeFn: func(string, string) error { return nil }}

	rc, err := newResetService(codes, users, emails).ForgotPassword(email, "accept")
	require.NoError(t, err)
	assert.Equal(t, "999999", rc.Code)
}

func TestCheckCode_Inconnu(t *testing.T) {
	codes := &mockResetCodeRepo{
		GetByCodeFn: func(string) (*models.ResetCodePassword, error) { return nil, nil },
	}
	svc := newResetService(codes, &mockUserRepo{}, &mockEmailService{})

	_, err := svc.CheckCode("123456")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestCheckCode_ExpireSupprimeLaLigne(t *testing.T) {
	deleted := false
	codes := &mockResetCodeRepo{
		GetByCodeFn: func(code string) (*models.ResetCodePassword, error) {
			return &models.ResetCodePassword{
				ID: 3, Email: "a@x.com", Code: code,
				CreatedAt: time.Now().Add(-2 * time.Hour),
			}, nil
		},
		DeleteFn: func(id int64) error {
			deleted = true
			assert.Equal(t, int64(3), id)
			return nil
		},
	}
	svc := newResetService(codes, &mockUserRepo{}, &mockEmailService{})

	_, err := svc.CheckCode("654321")
	assert.ErrorIs(t, err, ErrCodeExpired)
	assert.True(t, deleted, "un code expiré doit être supprimé au contrôle")
}

func TestCheckCode_Valide(t *testing.T) {
	codes := &mockResetCodeRepo{
		GetByCodeFn: func(code string) (*models.ResetCodePassword, error) {
			return &models.ResetCodePassword{
				ID: 4, Email: "a@x.com", Code: code,
				CreatedAt: time.Now().Add(-30 * time.Minute),
			}, nil
		},
	}
	svc := newResetService(codes, &mockUserRepo{}, &mockEmailService{})

	rc, err := svc.CheckCode("111222")
	require.NoError(t, err)
	assert.Equal(t, "111222", rc.Code)
}

func TestResetPassword_RehacheEtSupprimeLeCode(t *testing.T) {
	var newHash string
	users := &mockUserRepo{
		UpdatePasswordByEmailFn: func(email, hash string) error {
			assert.Equal(t, "a@x.com", email)
			newHash = hash
			return nil
		},
	}
	deleted := false
	codes := &mockResetCodeRepo{
		GetByCodeFn: func(code string) (*models.ResetCodePassword, error) {
			return &models.ResetCodePassword{ID: 5, Email: "a@x.com", Code: code, CreatedAt: time.Now()}, nil
		},
		DeleteFn: func(id int64) error { deleted = true; return nil },
	}
	svc := newResetService(codes, users, &mockEmailService{})

	err := svc.ResetPassword("222333", "nouveau-mdp")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, NewAuthService().CheckPassword(newHash, "nouveau-mdp"))
}

func TestResetPassword_CodeExpire(t *testing.T) {
	codes := &mockResetCodeRepo{
		GetByCodeFn: func(code string) (*models.ResetCodePassword, error) {
			return &models.ResetCodePassword{ID: 6, Email: "a@x.com", Code: code,
				CreatedAt: time.Now().Add(-61 * time.Minute)}, nil
		},
		DeleteFn: func(int64) error { return nil },
	}
	svc := newResetService(codes, &mockUserRepo{}, &mockEmailService{})

	err := svc.ResetPassword("333444", "peu-importe")
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestForgotPasswordOTP_MauvaisCanal(t *testing.T) {
	email := "a@x.com"
	users := &mockUserRepo{
		GetByTelephoneFn: func(string) (*models.User, error) {
			return &models.User{ID: 9, Email: &email, DefaultAuth: models.AuthChannelEmail}, nil
		},
	}
	svc := newResetService(&mockResetCodeRepo{}, users, &mockEmailService{})

	_, err := svc.ForgotPasswordOTP("22890000000")
	assert.ErrorIs(t, err, ErrWrongAuthChannel)
}
