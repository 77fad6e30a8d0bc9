package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/models"
	"haolaplus/internal/services"
)

type AuthHandler struct {
	users  services.UserService
	auth   services.AuthService
	tokens services.TokenService
	verif  *services.VerificationService
	logs   services.LogActivityService
}

func NewAuthHandler(
	users services.UserService,
	auth services.AuthService,
	tokens services.TokenService,
	verif *services.VerificationService,
	logs services.LogActivityService,
) *AuthHandler {
	return &AuthHandler{users: users, auth: auth, tokens: tokens, verif: verif, logs: logs}
}

type RegisterRequest struct {
	Nom       string `json:"nom" binding:"required"`
	Prenom    string `json:"prenom" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Telephone string `json:"telephone"`
	PaysID    int64  `json:"pays_id" binding:"required"`
	RoleID    int64  `json:"role_id" binding:"required"`
	ParrainID *int64 `json:"parent_id"`
	Password  string `json:"password" binding:"required,min=6"`
	CPassword string `json:"c_password" binding:"required,eqfield=Password"`
}

// @Summary      Enregistrement d'un utilisateur
// @Description  Crée un utilisateur ; email obligatoire quand telephone est absent et inversement
// @Tags         Authentification
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Informations d'enregistrement"
// @Success      201       {object}  map[string]interface{}
// @Failure      422       {object}  map[string]interface{}
// @Failure      500       {object}  map[string]interface{}
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(services.RegisterInput{
		Nom:       strings.TrimSpace(req.Nom),
		Prenom:    strings.TrimSpace(req.Prenom),
		Email:     strings.TrimSpace(req.Email),
		Telephone: strings.TrimSpace(req.Telephone),
		PaysID:    req.PaysID,
		RoleID:    req.RoleID,
		ParrainID: req.ParrainID,
		Password:  req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingContact),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrTelephoneTaken):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	default:
		log.Printf("[auth][register][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Erreur.", gin.H{"error": msgProcessingError})
		return
	}

	args := gin.H{"user": user}
	h.logs.AddToLog(requestMeta(c), "Enregistrement utilisateur", args)
	sendResponse(c, http.StatusCreated, args, "Utilisateur enregistrer avec success.")
}

// @Summary      Vérification de l'adresse e-mail
// @Description  Valide la signature du lien envoyé par mail et confirme l'adresse
// @Tags         Authentification
// @Produce      json
// @Param        id         path   int     true  "Id de l'utilisateur"
// @Param        signature  query  string  true  "Signature du lien"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /email/verify/{id} [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de l'utilisateur")
	if !ok {
		return
	}
	err := h.users.VerifyEmail(id, c.Query("signature"))
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "Votre mail a été confirmer avec sucèss")
	case errors.Is(err, services.ErrAlreadyVerified):
		sendError(c, http.StatusUnauthorized, "Cet email a été deja confirmer", gin.H{"error": "Cet email a été deja confirmer"})
	case errors.Is(err, services.ErrInvalidCode), errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusUnauthorized, "Erreur.", gin.H{"error": "URL non valide/expirée"})
	default:
		log.Printf("[auth][verify-email][err] user_id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur.", gin.H{"error": msgProcessingError})
	}
}

type ConfirmCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// @Summary      Confirmation du numéro de téléphone
// @Description  Contrôle le code OTP auprès du fournisseur et confirme le numéro
// @Tags         Authentification
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "Id de l'utilisateur"
// @Param        code  body  ConfirmCodeRequest  true  "Code OTP reçu par SMS"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /code/verify/{id} [post]
func (h *AuthHandler) ConfirmTelephone(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de l'utilisateur")
	if !ok {
		return
	}
	var req ConfirmCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	err := h.verif.ConfirmTelephone(id, req.Code)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "Votre telephone a été confirmer avec sucèss")
	case errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrWrongAuthChannel):
		sendError(c, http.StatusUnauthorized, "Erreur.", gin.H{"error": "code non valide"})
	default:
		log.Printf("[auth][confirm-tel][err] user_id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur.", gin.H{"error": msgProcessingError})
	}
}

// @Summary      Connexion
// @Description  Authentifie par email ou téléphone et renvoie un jeton bearer
// @Tags         Authentification
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Identifiants"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]interface{}
// @Failure      403    {object}  map[string]interface{}
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}

	username := strings.TrimSpace(req.Username)
	user, err := h.users.GetByUsername(username)
	if err != nil {
		log.Printf("[auth][login][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
		return
	}
	// Compte inconnu et mot de passe erroné produisent la même réponse.
	if user == nil || !h.auth.CheckPassword(user.PasswordHash, req.Password) {
		sendError(c, http.StatusForbidden, "Erreur de connexion.", gin.H{"error": "Email/Telephone ou mot de passe incorrect"})
		return
	}

	if user.DefaultAuth == models.AuthChannelEmail && !user.HasVerifiedEmail() {
		sendError(c, http.StatusUnauthorized, "verification Email.", gin.H{"error": "Lien de vérification de l'e-mail envoyé sur votre identifiant de messagerie"})
		return
	}
	if user.DefaultAuth == models.AuthChannelTelephone && !user.HasVerifiedTelephone() {
		sendError(c, http.StatusUnauthorized, "verification telephone.", gin.H{"error": "code otp envoyé sur votre numéro de telephone"})
		return
	}

	token, err := h.tokens.Issue(user.ID, "MyApp")
	if err != nil {
		log.Printf("[auth][login][err] token: %v", err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
		return
	}
	log.Printf("[auth][login] OK user_id=%d", user.ID)
	sendResponse(c, http.StatusOK, gin.H{"user": user, "token": token}, "Connexion effectuée avec succès")
}
