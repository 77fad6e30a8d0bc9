package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/middleware"
	"haolaplus/internal/services"
)

type UserHandler struct {
	users  services.UserService
	tokens services.TokenService
	logs   services.LogActivityService
}

func NewUserHandler(users services.UserService, tokens services.TokenService, logs services.LogActivityService) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, logs: logs}
}

// @Summary      Renvoi du lien de vérification e-mail
// @Tags         Utilisateur
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /user/email/resend [get]
func (h *UserHandler) ResendEmail(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.users.ResendEmailVerification(user)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "Lien de vérification de l'e-mail envoyé sur votre identifiant de messagerie.")
	case errors.Is(err, services.ErrAlreadyVerified):
		sendError(c, http.StatusBadRequest, "Verification Email..", gin.H{"error": "Email déjà vérifié"})
	default:
		log.Printf("[user][resend-email][err] user_id=%d err=%v", user.ID, err)
		sendError(c, http.StatusInternalServerError, "Verification Email.", gin.H{"error": msgProcessingError})
	}
}

// @Summary      Renvoi du code OTP
// @Tags         Utilisateur
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /user/code/resend [get]
func (h *UserHandler) ResendOTP(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.users.ResendOTP(user)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, []any{}, "code otp envoyer sur votre numéro de telephone.")
	case errors.Is(err, services.ErrAlreadyVerified):
		sendError(c, http.StatusBadRequest, "Verification Telephone..", gin.H{"error": "Telephone déjà vérifié"})
	default:
		log.Printf("[user][resend-otp][err] user_id=%d err=%v", user.ID, err)
		sendError(c, http.StatusInternalServerError, "Verification Telephone.", gin.H{"error": msgProcessingError})
	}
}

// @Summary      Informations de l'utilisateur connecté
// @Tags         Utilisateur
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /user/info [get]
func (h *UserHandler) Info(c *gin.Context) {
	user := middleware.CurrentUser(c)
	sendResponse(c, http.StatusOK, gin.H{"user": user}, "Les informations de l'utilisateur")
}

type EditUserRequest struct {
	Nom       string  `json:"nom" binding:"required"`
	Prenom    string  `json:"prenom" binding:"required"`
	Avatar    *string `json:"avatar"`
	Sexe      *string `json:"sexe"`
	Firebase  *string `json:"firebase_token"`
	Password  string  `json:"password" binding:"omitempty,min=6"`
	CPassword string  `json:"c_password" binding:"eqfield=Password"`
}

// @Summary      Modification des informations de l'utilisateur
// @Tags         Utilisateur
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        edit  body      EditUserRequest  true  "Champs modifiables"
// @Success      201   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /user/edit [post]
func (h *UserHandler) Edit(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.users.EditUser(user.ID, services.EditInput{
		Nom:      strings.TrimSpace(req.Nom),
		Prenom:   strings.TrimSpace(req.Prenom),
		Avatar:   req.Avatar,
		Sexe:     req.Sexe,
		Firebase: req.Firebase,
		Password: req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, services.ErrEmailTaken):
		sendError(c, http.StatusForbidden, "Email existe.", gin.H{"error": "cet email existe deja dans la base de donnée"})
		return
	default:
		log.Printf("[user][edit][err] user_id=%d err=%v", user.ID, err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
		return
	}

	token, err := h.tokens.Issue(updated.ID, "MyApp")
	if err != nil {
		log.Printf("[user][edit][err] token: %v", err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
		return
	}
	args := gin.H{"user": updated, "token": token}
	h.logs.AddToLog(requestMeta(c), "modification information utilisateur", args)
	sendResponse(c, http.StatusCreated, args, "Utilisateur enregistrer avec success.")
}

// @Summary      Déconnexion
// @Tags         Utilisateur
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /user/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := h.users.Logout(user.ID); err != nil {
		log.Printf("[user][logout][err] user_id=%d err=%v", user.ID, err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
		return
	}
	sendResponse(c, http.StatusOK, []any{}, "Déconnexion effectuée avec succès")
}

// @Summary      Suppression du compte
// @Tags         Utilisateur
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /user/remove [post]
func (h *UserHandler) Remove(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := h.users.Remove(user.ID); err != nil {
		log.Printf("[user][remove][err] user_id=%d err=%v", user.ID, err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
		return
	}
	sendResponse(c, http.StatusOK, []any{}, "Suppresion effectuée avec succès")
}

// @Summary      Activation ou désactivation d'un utilisateur
// @Tags         Utilisateur
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int  true  "Id de l'utilisateur"
// @Param        status  path  int  true  "1 activation, 0 désactivation"
// @Success      200  {object}  map[string]interface{}
// @Router       /user/activation/{id}/{status} [get]
func (h *UserHandler) Activation(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de l'utilisateur")
	if !ok {
		return
	}
	status := c.Param("status")
	if status != "0" && status != "1" {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": "status doit valoir 0 ou 1"})
		return
	}
	if err := h.users.SetStatus(id, status); err != nil {
		log.Printf("[user][activation][err] user_id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Error.", gin.H{"error": msgProcessingError})
		return
	}
	sendResponse(c, http.StatusOK, []any{}, "Activation/Desactivation effectuée avec succès")
}
