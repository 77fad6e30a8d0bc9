package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"haolaplus/internal/models"
	"haolaplus/internal/repositories"
	"haolaplus/internal/utils"
)

type RegisterInput struct {
	Nom       string
	Prenom    string
	Email     string // vide si canal téléphone
	Telephone string // vide si canal email
	PaysID    int64
	RoleID    int64
	ParrainID *int64
	Password  string
}

type EditInput struct {
	Nom       string
	Prenom    string
	Avatar    *string
	Sexe      *string
	Password  string // vide = inchangé
	Firebase  *string
}

type UserService interface {
	Register(in RegisterInput) (*models.User, error)
	VerifyEmail(userID int64, signature string) error
	ResendEmailVerification(user *models.User) error
	ResendOTP(user *models.User) error
	EditUser(userID int64, in EditInput) (*models.User, error)
	Logout(userID int64) error
	Remove(userID int64) error
	SetStatus(userID int64, status string) error
	GetByID(id int64) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByTelephone(telephone string) (*models.User, error)
}

type userService struct {
	db       *sql.DB
	repo     repositories.UserRepository
	auth     AuthService
	tokens   TokenService
	emails   EmailService
	verif    *VerificationService
	signer   *utils.URLSigner
	telegram *TelegramService
}

func NewUserService(
	db *sql.DB,
	repo repositories.UserRepository,
	auth AuthService,
	tokens TokenService,
	emails EmailService,
	verif *VerificationService,
	signer *utils.URLSigner,
	telegram *TelegramService,
) UserService {
	return &userService{
		db:       db,
		repo:     repo,
		auth:     auth,
		tokens:   tokens,
		emails:   emails,
		verif:    verif,
		signer:   signer,
		telegram: telegram,
	}
}

// DeriveDefaultAuth — exactement un canal de contact : email (1) ou téléphone (2).
func DeriveDefaultAuth(email, telephone string) (int, error) {
	if email == "" && telephone == "" {
		return 0, ErrMissingContact
	}
	if email != "" {
		return models.AuthChannelEmail, nil
	}
	return models.AuthChannelTelephone, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func violatesConstraint(err error, fragment string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && strings.Contains(pqErr.Constraint, fragment)
}

// Register — toute la persistance d'un enregistrement tient dans une seule
// transaction ; un échec de dépêche (email ou fournisseur OTP) annule tout.
func (s *userService) Register(in RegisterInput) (*models.User, error) {
	defaultAuth, err := DeriveDefaultAuth(in.Email, in.Telephone)
	if err != nil {
		return nil, err
	}

	if in.Email != "" {
		taken, err := s.repo.EmailExists(in.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}
	if in.Telephone != "" {
		taken, err := s.repo.TelephoneExists(in.Telephone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrTelephoneTaken
		}
	}

	hash, err := s.auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Nom:          in.Nom,
		Prenom:       in.Prenom,
		PasswordHash: hash,
		DefaultAuth:  defaultAuth,
		PaysID:       in.PaysID,
		RoleID:       in.RoleID,
		ParrainID:    in.ParrainID,
		Status:       "1",
	}
	if in.Email != "" {
		user.Email = &in.Email
	}
	if in.Telephone != "" {
		user.Telephone = &in.Telephone
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("register: begin: %w", err)
	}
	if err := s.repo.CreateTx(tx, user); err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			// course perdue sur une contrainte d'unicité : le nom de la
			// contrainte dit quel champ est en cause
			if violatesConstraint(err, "telephone") || in.Email == "" {
				return nil, ErrTelephoneTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if defaultAuth == models.AuthChannelEmail {
		link, err := s.signer.EmailVerificationURL(user.ID)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if err := s.emails.SendVerificationEmail(in.Email, link); err != nil {
			_ = tx.Rollback()
			log.Printf("[register][email][err] %v", err)
			s.telegram.Notify(fmt.Sprintf("⚠️ Haola+ : échec d'envoi du mail de vérification (user %s %s)", in.Nom, in.Prenom))
			return nil, ErrProviderDispatch
		}
	} else {
		if err := s.verif.GenerateSMSCodeTx(tx, user.ID, in.Telephone); err != nil {
			_ = tx.Rollback()
			s.telegram.Notify("⚠️ Haola+ : échec de dépêche OTP chez le fournisseur de vérification")
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("register: commit: %w", err)
	}

	log.Printf("[register] OK user_id=%d default_auth=%d", user.ID, defaultAuth)
	s.telegram.Notify(fmt.Sprintf("🆕 Haola+ : nouvel utilisateur %s %s (id=%d)", user.Nom, user.Prenom, user.ID))
	return user, nil
}

func (s *userService) VerifyEmail(userID int64, signature string) error {
	if err := s.signer.VerifySignature(userID, signature); err != nil {
		return ErrInvalidCode
	}
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if user.HasVerifiedEmail() {
		return ErrAlreadyVerified
	}
	return s.repo.MarkEmailVerified(userID)
}

func (s *userService) ResendEmailVerification(user *models.User) error {
	if user.HasVerifiedEmail() {
		return ErrAlreadyVerified
	}
	if user.Email == nil {
		return ErrWrongAuthChannel
	}
	link, err := s.signer.EmailVerificationURL(user.ID)
	if err != nil {
		return err
	}
	return s.emails.SendVerificationEmail(*user.Email, link)
}

func (s *userService) ResendOTP(user *models.User) error {
	if user.HasVerifiedTelephone() {
		return ErrAlreadyVerified
	}
	if user.Telephone == nil {
		return ErrWrongAuthChannel
	}
	return s.verif.GenerateSMSCode(user.ID, *user.Telephone)
}

func (s *userService) EditUser(userID int64, in EditInput) (*models.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.Nom = in.Nom
	user.Prenom = in.Prenom
	if in.Avatar != nil {
		user.Avatar = in.Avatar
	}
	if in.Sexe != nil {
		user.Sexe = in.Sexe
	}
	if in.Firebase != nil {
		user.FirebaseToken = in.Firebase
	}
	if in.Password != "" {
		hash, err := s.auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Logout(userID int64) error {
	return s.tokens.RevokeAll(userID)
}

// Remove — révoque tous les jetons, purge les traces OTP, puis pose la
// suppression logique.
func (s *userService) Remove(userID int64) error {
	if err := s.tokens.RevokeAll(userID); err != nil {
		return err
	}
	if err := s.verif.DiscardTraces(userID); err != nil {
		return err
	}
	return s.repo.SoftDelete(userID)
}

func (s *userService) SetStatus(userID int64, status string) error {
	return s.repo.SetStatus(userID, status)
}

func (s *userService) GetByID(id int64) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	return s.repo.GetByUsername(username)
}

func (s *userService) GetByTelephone(telephone string) (*models.User, error) {
	return s.repo.GetByTelephone(telephone)
}
