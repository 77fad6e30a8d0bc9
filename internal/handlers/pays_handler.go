package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/services"
)

type PaysHandler struct {
	geo *services.GeoService
}

func NewPaysHandler(geo *services.GeoService) *PaysHandler {
	return &PaysHandler{geo: geo}
}

type PaysRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Indicatif string `json:"indicatif" binding:"required"`
}

// @Summary      Liste des pays
// @Tags         Adresse
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /adresse/pays/liste [get]
func (h *PaysHandler) Liste(c *gin.Context) {
	pays, err := h.geo.ListPays()
	if err != nil {
		log.Printf("[pays][liste][err] %v", err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	sendResponse(c, http.StatusOK, gin.H{"pays": pays}, "Liste des pays.")
}

// @Summary      Enregistrement d'un pays
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        pays  body      PaysRequest  true  "Champs du pays"
// @Success      201   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /adresse/pays/create [post]
func (h *PaysHandler) Create(c *gin.Context) {
	var req PaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	p, err := h.geo.CreatePays(req.Name, req.Code, req.Indicatif)
	if err != nil {
		log.Printf("[pays][create][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
		return
	}
	sendResponse(c, http.StatusCreated, gin.H{"pays": p}, "Element enregistrer avec succès.")
}

// @Summary      Détails d'un pays
// @Tags         Adresse
// @Produce      json
// @Param        id  path  int  true  "Id du pays"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/pays/show/{id} [get]
func (h *PaysHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id du pays")
	if !ok {
		return
	}
	p, err := h.geo.GetPays(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"pays": p}, "Details du pays.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de voir les informations de ce pays", nil)
	default:
		log.Printf("[pays][show][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
	}
}

// @Summary      Modification d'un pays
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int          true  "Id du pays"
// @Param        pays  body  PaysRequest  true  "Champs du pays"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/pays/update/{id} [post]
func (h *PaysHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id du pays")
	if !ok {
		return
	}
	var req PaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	p, err := h.geo.UpdatePays(id, req.Name, req.Code, req.Indicatif)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"pays": p}, "Element enregistrer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de trouver les informations de ce pays", nil)
	default:
		log.Printf("[pays][update][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
	}
}

// @Summary      Suppression d'un pays
// @Tags         Adresse
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Id du pays"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/pays/destroy/{id} [post]
func (h *PaysHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id du pays")
	if !ok {
		return
	}
	err := h.geo.DeletePays(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{}, "Element supprimer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de supprimer ce pays", nil)
	default:
		log.Printf("[pays][destroy][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de la suppression des données", nil)
	}
}
