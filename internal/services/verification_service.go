package services

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"haolaplus/internal/models"
	"haolaplus/internal/repositories"
)

// OTPVerifier — couture vers le fournisseur de vérification (Twilio Verify).
type OTPVerifier interface {
	StartVerification(to string) error
	CheckVerification(to, code string) (bool, error)
}

const otpTTL = 10 * time.Minute

// VerificationService porte le cycle de vie des OTP téléphone : émission (une ligne
// locale de trace, l'envoi réel chez le fournisseur), contrôle, consommation.
type VerificationService struct {
	SmsRepo  repositories.SmsVerificationRepository
	Users    repositories.UserRepository
	Provider OTPVerifier
}

func NewVerificationService(
	smsRepo repositories.SmsVerificationRepository,
	users repositories.UserRepository,
	provider OTPVerifier,
) *VerificationService {
	return &VerificationService{SmsRepo: smsRepo, Users: users, Provider: provider}
}

func generateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// GenerateSMSCodeTx — voie de l'enregistrement : la ligne locale rejoint la
// transaction de l'appelant ; un échec fournisseur remonte pour tout annuler.
func (s *VerificationService) GenerateSMSCodeTx(tx *sql.Tx, userID int64, telephone string) error {
	finalNumber := "+" + telephone
	if err := s.SmsRepo.DeleteByUserTx(tx, userID); err != nil {
		return err
	}
	v := &models.SmsVerification{
		UserID:    userID,
		Telephone: finalNumber,
		OTP:       generateOTP(),
		ExpireAt:  time.Now().Add(otpTTL),
	}
	if err := s.SmsRepo.CreateTx(tx, v); err != nil {
		return err
	}
	if err := s.Provider.StartVerification(finalNumber); err != nil {
		log.Printf("[otp][dispatch][err] user_id=%d err=%v", userID, err)
		return ErrProviderDispatch
	}
	log.Printf("[otp][send] user_id=%d", userID)
	return nil
}

// GenerateSMSCode — voie hors enregistrement (resend, mot de passe oublié).
func (s *VerificationService) GenerateSMSCode(userID int64, telephone string) error {
	finalNumber := "+" + telephone
	v := &models.SmsVerification{
		UserID:    userID,
		Telephone: finalNumber,
		OTP:       generateOTP(),
		ExpireAt:  time.Now().Add(otpTTL),
	}
	if err := s.SmsRepo.Replace(v); err != nil {
		return err
	}
	if err := s.Provider.StartVerification(finalNumber); err != nil {
		log.Printf("[otp][dispatch][err] user_id=%d err=%v", userID, err)
		return ErrProviderDispatch
	}
	log.Printf("[otp][send] user_id=%d", userID)
	return nil
}

// CheckOTP — contrôle du code auprès du fournisseur ; consomme (ou périme) la trace
// locale. L'expiration est posée paresseusement, au moment du contrôle.
func (s *VerificationService) CheckOTP(userID int64, telephone, code string) (bool, error) {
	latest, err := s.SmsRepo.GetLatestByUser(userID)
	if err != nil {
		return false, err
	}
	if latest != nil && latest.Status == models.SmsStatusIssued && time.Now().After(latest.ExpireAt) {
		_ = s.SmsRepo.MarkExpired(latest.ID)
	}

	ok, err := s.Provider.CheckVerification("+"+telephone, code)
	if err != nil {
		return false, fmt.Errorf("verification check: %w", err)
	}
	if !ok {
		return false, nil
	}
	if latest != nil && latest.Status == models.SmsStatusIssued {
		_ = s.SmsRepo.MarkConsumed(latest.ID)
	}
	return true, nil
}

// DiscardTraces supprime les traces OTP locales d'un utilisateur, au moment de
// la suppression de son compte.
func (s *VerificationService) DiscardTraces(userID int64) error {
	return s.SmsRepo.DeleteByUser(userID)
}

// ConfirmTelephone — confirmation du numéro après enregistrement.
func (s *VerificationService) ConfirmTelephone(userID int64, code string) error {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if user.Telephone == nil {
		return ErrWrongAuthChannel
	}
	ok, err := s.CheckOTP(userID, *user.Telephone, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}
	if err := s.Users.MarkTelephoneVerified(userID); err != nil {
		return err
	}
	log.Printf("[otp][confirm] OK user_id=%d", userID)
	return nil
}
