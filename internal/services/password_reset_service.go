package services

import (
	"log"
	"time"

	"haolaplus/internal/models"
	"haolaplus/internal/repositories"
)

// Code fixe émis quand la demande vient du parcours de recette interne
// (fromFow=accept) : une vraie ligne en base, même cycle de vie que les autres.
const trustedResetCode = "999999"

type PasswordResetService interface {
	ForgotPassword(email, fromFow string) (*models.ResetCodePassword, error)
	ForgotPasswordOTP(telephone string) (*models.User, error)
	CheckCode(code string) (*models.ResetCodePassword, error)
	ResetPassword(code, newPassword string) error
	ResetPasswordOTP(telephone, code, newPassword string) error
}

type passwordResetService struct {
	codes  repositories.ResetCodeRepository
	users  repositories.UserRepository
	auth   AuthService
	emails EmailService
	verif  *VerificationService
}

func NewPasswordResetService(
	codes repositories.ResetCodeRepository,
	users repositories.UserRepository,
	auth AuthService,
	emails EmailService,
	verif *VerificationService,
) PasswordResetService {
	return &passwordResetService{codes: codes, users: users, auth: auth, emails: emails, verif: verif}
}

// ForgotPassword — canal email : un seul code actif par adresse, le nouveau
// remplace l'ancien.
func (s *passwordResetService) ForgotPassword(email, fromFow string) (*models.ResetCodePassword, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	code := generateOTP()
	if fromFow == "accept" {
		code = trustedResetCode
	}
	rc, err := s.codes.Replace(email, code)
	if err != nil {
		return nil, err
	}
	if err := s.emails.SendResetCodeEmail(email, rc.Code); err != nil {
		log.Printf("[password][forgot][err] email dispatch: %v", err)
		return nil, ErrProviderDispatch
	}
	log.Printf("[password][forgot] code émis pour user_id=%d", user.ID)
	return rc, nil
}

// ForgotPasswordOTP — canal téléphone : repasse par le fournisseur de vérification.
func (s *passwordResetService) ForgotPasswordOTP(telephone string) (*models.User, error) {
	user, err := s.users.GetByTelephone(telephone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.DefaultAuth != models.AuthChannelTelephone {
		return nil, ErrWrongAuthChannel
	}
	if err := s.verif.GenerateSMSCode(user.ID, telephone); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckCode — un code inconnu est non valide ; un code de plus d'une heure est
// supprimé puis signalé expiré, jamais réutilisable ensuite.
func (s *passwordResetService) CheckCode(code string) (*models.ResetCodePassword, error) {
	rc, err := s.codes.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, ErrInvalidCode
	}
	if rc.Expired(time.Now()) {
		_ = s.codes.Delete(rc.ID)
		return nil, ErrCodeExpired
	}
	return rc, nil
}

func (s *passwordResetService) ResetPassword(code, newPassword string) error {
	rc, err := s.CheckCode(code)
	if err != nil {
		return err
	}
	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordByEmail(rc.Email, hash); err != nil {
		return err
	}
	if err := s.codes.Delete(rc.ID); err != nil {
		return err
	}
	log.Printf("[password][reset] OK email=%s", rc.Email)
	return nil
}

// ResetPasswordOTP — aboutissement du parcours téléphone : le code repart chez le
// fournisseur pour contrôle avant le re-hachage.
func (s *passwordResetService) ResetPasswordOTP(telephone, code, newPassword string) error {
	user, err := s.users.GetByTelephone(telephone)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	ok, err := s.verif.CheckOTP(user.ID, telephone, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}
	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(user.ID, hash); err != nil {
		return err
	}
	log.Printf("[password][reset][otp] OK user_id=%d", user.ID)
	return nil
}
