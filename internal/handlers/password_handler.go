package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/services"
)

type PasswordHandler struct {
	resets services.PasswordResetService
}

func NewPasswordHandler(resets services.PasswordResetService) *PasswordHandler {
	return &PasswordHandler{resets: resets}
}

type ForgotPasswordRequest struct {
	Email   string `json:"email" binding:"required,email"`
	FromFow string `json:"fromFow"`
}

// @Summary      Mot de passe oublié, envoi du code par e-mail
// @Tags         Mot de passe
// @Accept       json
// @Produce      json
// @Param        forgot  body      ForgotPasswordRequest  true  "Adresse e-mail du compte"
// @Success      200     {object}  map[string]interface{}
// @Failure      422     {object}  map[string]interface{}
// @Router       /password/email [post]
func (h *PasswordHandler) ForgotEmail(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	_, err := h.resets.ForgotPassword(strings.TrimSpace(req.Email), req.FromFow)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "Nous vous avons envoyé par courriel le lien de réinitialisation du mot de passe !")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"email": "Le champ adresse e-mail sélectionné est invalide"})
	default:
		log.Printf("[password][forgot-email][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
	}
}

type ForgotPasswordOTPRequest struct {
	Telephone string `json:"telephone" binding:"required"`
}

// @Summary      Mot de passe oublié, envoi du code par téléphone
// @Tags         Mot de passe
// @Accept       json
// @Produce      json
// @Param        forgot  body      ForgotPasswordOTPRequest  true  "Numéro de téléphone du compte"
// @Success      200     {object}  map[string]interface{}
// @Failure      401     {object}  map[string]interface{}
// @Router       /password/telephone [post]
func (h *PasswordHandler) ForgotTelephone(c *gin.Context) {
	var req ForgotPasswordOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	_, err := h.resets.ForgotPasswordOTP(strings.TrimSpace(req.Telephone))
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "Code de rénitialisation envoyé avec succès.")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrWrongAuthChannel):
		sendError(c, http.StatusUnauthorized, "Erreur.", gin.H{"error": "Impossible d'envoyer un code renitialisation à ce numéro"})
	default:
		log.Printf("[password][forgot-tel][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Erreur.", gin.H{"error": msgProcessingError})
	}
}

type CodeCheckRequest struct {
	Code string `json:"code" binding:"required"`
}

// @Summary      Vérification du code de réinitialisation
// @Tags         Mot de passe
// @Accept       json
// @Produce      json
// @Param        check  body      CodeCheckRequest  true  "Code reçu par e-mail"
// @Success      200    {object}  map[string]interface{}
// @Failure      422    {object}  map[string]interface{}
// @Router       /password/code/check [post]
func (h *PasswordHandler) CodeCheck(c *gin.Context) {
	var req CodeCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	rc, err := h.resets.CheckCode(req.Code)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"code": rc.Code}, "Votre code est valide.")
	case errors.Is(err, services.ErrCodeExpired):
		sendError(c, http.StatusUnprocessableEntity, "Votre code est expiré.", gin.H{"code": "Votre code est expiré"})
	case errors.Is(err, services.ErrInvalidCode):
		sendError(c, http.StatusUnprocessableEntity, "Le champ code sélectionné est invalide.", gin.H{"code": "Le champ code sélectionné est invalide"})
	default:
		log.Printf("[password][code-check][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
	}
}

type ResetPasswordRequest struct {
	Code      string `json:"code" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	CPassword string `json:"c_password" binding:"required,eqfield=Password"`
}

// @Summary      Définition d'un nouveau mot de passe
// @Tags         Mot de passe
// @Accept       json
// @Produce      json
// @Param        reset  body      ResetPasswordRequest  true  "Code et nouveau mot de passe"
// @Success      200    {object}  map[string]interface{}
// @Failure      422    {object}  map[string]interface{}
// @Router       /password/reset [post]
func (h *PasswordHandler) Reset(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	err := h.resets.ResetPassword(req.Code, req.Password)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "le mot de passe a été réinitialisé avec succès")
	case errors.Is(err, services.ErrCodeExpired):
		sendError(c, http.StatusUnprocessableEntity, "Votre code est expiré.", gin.H{"code": "Votre code est expiré"})
	case errors.Is(err, services.ErrInvalidCode):
		sendError(c, http.StatusUnprocessableEntity, "Le champ code sélectionné est invalide.", gin.H{"code": "Le champ code sélectionné est invalide"})
	default:
		log.Printf("[password][reset][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
	}
}

type ResetPasswordOTPRequest struct {
	Telephone        string `json:"telephone" binding:"required"`
	VerificationCode string `json:"verification_code" binding:"required"`
	Password         string `json:"password" binding:"required,min=6"`
	CPassword        string `json:"c_password" binding:"required,eqfield=Password"`
}

// @Summary      Réinitialisation du mot de passe par code OTP
// @Tags         Mot de passe
// @Accept       json
// @Produce      json
// @Param        reset  body      ResetPasswordOTPRequest  true  "Téléphone, code OTP et nouveau mot de passe"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]interface{}
// @Router       /code/otp/verify [post]
func (h *PasswordHandler) ResetOTP(c *gin.Context) {
	var req ResetPasswordOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	err := h.resets.ResetPasswordOTP(strings.TrimSpace(req.Telephone), req.VerificationCode, req.Password)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "le mot de passe a été réinitialisé avec succès")
	case errors.Is(err, services.ErrInvalidCode), errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusUnauthorized, "Erreur.", gin.H{"error": "code non valide"})
	default:
		log.Printf("[password][reset-otp][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Erreur.", gin.H{"error": msgProcessingError})
	}
}
