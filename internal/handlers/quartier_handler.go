package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/services"
)

type QuartierHandler struct {
	geo *services.GeoService
}

func NewQuartierHandler(geo *services.GeoService) *QuartierHandler {
	return &QuartierHandler{geo: geo}
}

type QuartierRequest struct {
	Name    string `json:"name" binding:"required"`
	VilleID int64  `json:"ville_id" binding:"required"`
}

// @Summary      Liste des quartiers
// @Tags         Adresse
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /adresse/quartier/liste [get]
func (h *QuartierHandler) Liste(c *gin.Context) {
	quartiers, err := h.geo.ListQuartiers()
	if err != nil {
		log.Printf("[quartier][liste][err] %v", err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	sendResponse(c, http.StatusOK, gin.H{"quartiers": quartiers}, "Liste des quartiers.")
}

// @Summary      Enregistrement d'un quartier
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        quartier  body      QuartierRequest  true  "Champs du quartier"
// @Success      201       {object}  map[string]interface{}
// @Failure      422       {object}  map[string]interface{}
// @Router       /adresse/quartier/create [post]
func (h *QuartierHandler) Create(c *gin.Context) {
	var req QuartierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	qt, err := h.geo.CreateQuartier(req.Name, req.VilleID)
	switch {
	case err == nil:
		sendResponse(c, http.StatusCreated, gin.H{"quartier": qt}, "Element enregistrer avec succès.")
	case errors.Is(err, services.ErrParentNotFound):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"ville_id": "Le champ ville id sélectionné est invalide"})
	default:
		log.Printf("[quartier][create][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
	}
}

// @Summary      Détails d'un quartier
// @Tags         Adresse
// @Produce      json
// @Param        id  path  int  true  "Id du quartier"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/quartier/show/{id} [get]
func (h *QuartierHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id du quartier")
	if !ok {
		return
	}
	qt, err := h.geo.GetQuartier(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"quartier": qt}, "Details du quartier.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de voir les informations de ce quartier", nil)
	default:
		log.Printf("[quartier][show][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
	}
}

// @Summary      Modification d'un quartier
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  int              true  "Id du quartier"
// @Param        quartier  body  QuartierRequest  true  "Champs du quartier"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/quartier/update/{id} [post]
func (h *QuartierHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id du quartier")
	if !ok {
		return
	}
	var req QuartierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	qt, err := h.geo.UpdateQuartier(id, req.Name, req.VilleID)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"quartier": qt}, "Element enregistrer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de modifier les informations de ce quartier", nil)
	case errors.Is(err, services.ErrParentNotFound):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"ville_id": "Le champ ville id sélectionné est invalide"})
	default:
		log.Printf("[quartier][update][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
	}
}

// @Summary      Suppression d'un quartier
// @Tags         Adresse
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Id du quartier"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/quartier/destroy/{id} [post]
func (h *QuartierHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id du quartier")
	if !ok {
		return
	}
	err := h.geo.DeleteQuartier(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{}, "Element supprimer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de supprimer ce quartier", nil)
	default:
		log.Printf("[quartier][destroy][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de la suppression des données", nil)
	}
}
