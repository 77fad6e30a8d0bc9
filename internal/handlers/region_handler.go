package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/services"
)

type RegionHandler struct {
	geo *services.GeoService
}

func NewRegionHandler(geo *services.GeoService) *RegionHandler {
	return &RegionHandler{geo: geo}
}

type RegionRequest struct {
	Name   string `json:"name" binding:"required"`
	PaysID int64  `json:"pays_id" binding:"required"`
}

// @Summary      Liste des regions
// @Tags         Adresse
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /adresse/region/liste [get]
func (h *RegionHandler) Liste(c *gin.Context) {
	regions, err := h.geo.ListRegions()
	if err != nil {
		log.Printf("[region][liste][err] %v", err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	sendResponse(c, http.StatusOK, gin.H{"regions": regions}, "Liste des regions.")
}

// @Summary      Enregistrement d'une region
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        region  body      RegionRequest  true  "Champs de la region"
// @Success      201     {object}  map[string]interface{}
// @Failure      422     {object}  map[string]interface{}
// @Router       /adresse/region/create [post]
func (h *RegionHandler) Create(c *gin.Context) {
	var req RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	reg, err := h.geo.CreateRegion(req.Name, req.PaysID)
	switch {
	case err == nil:
		sendResponse(c, http.StatusCreated, gin.H{"region": reg}, "Element enregistrer avec succès.")
	case errors.Is(err, services.ErrParentNotFound):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"pays_id": "Le champ pays id sélectionné est invalide"})
	default:
		log.Printf("[region][create][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
	}
}

// @Summary      Détails d'une region
// @Tags         Adresse
// @Produce      json
// @Param        id  path  int  true  "Id de la region"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/region/show/{id} [get]
func (h *RegionHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de la region")
	if !ok {
		return
	}
	reg, err := h.geo.GetRegion(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"region": reg}, "Details de la region.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de voir les informations de cette region", nil)
	default:
		log.Printf("[region][show][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
	}
}

// @Summary      Modification d'une region
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int            true  "Id de la region"
// @Param        region  body  RegionRequest  true  "Champs de la region"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/region/update/{id} [post]
func (h *RegionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de la region")
	if !ok {
		return
	}
	var req RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	reg, err := h.geo.UpdateRegion(id, req.Name, req.PaysID)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"region": reg}, "Element enregistrer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de modifier les informations de cette region", nil)
	case errors.Is(err, services.ErrParentNotFound):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"pays_id": "Le champ pays id sélectionné est invalide"})
	default:
		log.Printf("[region][update][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
	}
}

// @Summary      Suppression d'une region
// @Tags         Adresse
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Id de la region"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/region/destroy/{id} [post]
func (h *RegionHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de la region")
	if !ok {
		return
	}
	err := h.geo.DeleteRegion(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{}, "Element supprimer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de supprimer cette region", nil)
	default:
		log.Printf("[region][destroy][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de la suppression des données", nil)
	}
}
