package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haolaplus/internal/models"
)

func TestGenerateSMSCode_EchecFournisseur(t *testing.T) {
	sms := &mockSmsRepo{
		ReplaceFn: func(v *models.SmsVerification) error { return nil },
	}
	provider := &mockProvider{
		StartFn: func(to string) error { return assert.AnError },
	}
	svc := NewVerificationService(sms, &mockUserRepo{}, provider)

	err := svc.GenerateSMSCode(1, "22890000000")
	assert.ErrorIs(t, err, ErrProviderDispatch)
}

func TestGenerateSMSCode_PrefixeEtExpiration(t *testing.T) {
	var stored *models.SmsVerification
	sms := &mockSmsRepo{
		ReplaceFn: func(v *models.SmsVerification) error { stored = v; return nil },
	}
	provider := &mockProvider{
		StartFn: func(to string) error {
			assert.Equal(t, "+22890000000", to)
			return nil
		},
	}
	svc := NewVerificationService(sms, &mockUserRepo{}, provider)

	require.NoError(t, svc.GenerateSMSCode(4, "22890000000"))
	require.NotNil(t, stored)
	assert.Equal(t, "+22890000000", stored.Telephone)
	assert.Len(t, stored.OTP, 6)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), stored.ExpireAt, time.Minute)
}

func TestCheckOTP_ExpirationParesseuse(t *testing.T) {
	expired := false
	sms := &mockSmsRepo{
		GetLatestByUserFn: func(userID int64) (*models.SmsVerification, error) {
			return &models.SmsVerification{
				ID: 10, UserID: userID, Status: models.SmsStatusIssued,
				ExpireAt: time.Now().Add(-time.Minute),
			}, nil
		},
		MarkExpiredFn: func(id int64) error {
			expired = true
			assert.Equal(t, int64(10), id)
			return nil
		},
	}
	provider := &mockProvider{
		CheckFn: func(to, code string) (bool, error) { return false, nil },
	}
	svc := NewVerificationService(sms, &mockUserRepo{}, provider)

	ok, err := svc.CheckOTP(2, "22890000000", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, expired, "la trace locale doit être périmée au contrôle")
}

func TestCheckOTP_SuccesConsommeLaTrace(t *testing.T) {
	consumed := false
	sms := &mockSmsRepo{
		GetLatestByUserFn: func(userID int64) (*models.SmsVerification, error) {
			return &models.SmsVerification{
				ID: 11, UserID: userID, Status: models.SmsStatusIssued,
				ExpireAt: time.Now().Add(5 * time.Minute),
			}, nil
		},
		MarkConsumedFn: func(id int64) error {
			consumed = true
			return nil
		},
	}
	provider := &mockProvider{
		CheckFn: func(to, code string) (bool, error) { return true, nil },
	}
	svc := NewVerificationService(sms, &mockUserRepo{}, provider)

	ok, err := svc.CheckOTP(3, "22890000000", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, consumed)
}

func TestConfirmTelephone_CodeInvalide(t *testing.T) {
	tel := "22890000000"
	users := &mockUserRepo{
		GetByIDFn: func(id int64) (*models.User, error) {
			return &models.User{ID: id, Telephone: &tel, DefaultAuth: models.AuthChannelTelephone}, nil
		},
	}
	sms := &mockSmsRepo{
		GetLatestByUserFn: func(int64) (*models.SmsVerification, error) { return nil, nil },
	}
	provider := &mockProvider{
		CheckFn: func(to, code string) (bool, error) { return false, nil },
	}
	svc := NewVerificationService(sms, users, provider)

	err := svc.ConfirmTelephone(5, "000111")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestConfirmTelephone_Succes(t *testing.T) {
	tel := "22890000000"
	verified := false
	users := &mockUserRepo{
		GetByIDFn: func(id int64) (*models.User, error) {
			return &models.User{ID: id, Telephone: &tel, DefaultAuth: models.AuthChannelTelephone}, nil
		},
		MarkTelephoneVerifiedFn: func(id int64) error {
			verified = true
			return nil
		},
	}
	sms := &mockSmsRepo{
		GetLatestByUserFn: func(userID int64) (*models.SmsVerification, error) {
			return &models.SmsVerification{
				ID: 12, UserID: userID, Status: models.SmsStatusIssued,
				ExpireAt: time.Now().Add(5 * time.Minute),
			}, nil
		},
		MarkConsumedFn: func(int64) error { return nil },
	}
	provider := &mockProvider{
		CheckFn: func(to, code string) (bool, error) { return true, nil },
	}
	svc := NewVerificationService(sms, users, provider)

	require.NoError(t, svc.ConfirmTelephone(6, "123456"))
	assert.True(t, verified)
}
