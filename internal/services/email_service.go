package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendVerificationEmail(email, link string) error
	SendResetCodeEmail(email, code string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendVerificationEmail(email, link string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Haola+ — Confirmez votre adresse e-mail")

	body := fmt.Sprintf(`
		<h3>Bienvenue sur Haola+ !</h3>
		<p>Merci de confirmer votre adresse e-mail en cliquant sur le lien ci-dessous :</p>
		<p><a href="%s">Confirmer mon adresse e-mail</a></p>
		<p>Ce lien expire après 48 heures.</p>
	`, link)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

func (s *emailService) SendResetCodeEmail(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Haola+ — Réinitialisation du mot de passe")

	body := fmt.Sprintf(`
		<h3>Réinitialisation du mot de passe</h3>
		<p>Nous avons reçu une demande de réinitialisation du mot de passe de votre compte.</p>
		<p>Votre code de réinitialisation : <strong>%s</strong></p>
		<p>Ce code est valable une heure. Si vous n'êtes pas à l'origine de cette demande,
		ignorez simplement ce message.</p>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send reset code email: %w", err)
	}
	return nil
}
