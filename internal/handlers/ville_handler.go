package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/services"
)

type VilleHandler struct {
	geo *services.GeoService
}

func NewVilleHandler(geo *services.GeoService) *VilleHandler {
	return &VilleHandler{geo: geo}
}

type VilleRequest struct {
	Name     string `json:"name" binding:"required"`
	RegionID int64  `json:"region_id" binding:"required"`
}

// @Summary      Liste des villes
// @Tags         Adresse
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /adresse/ville/liste [get]
func (h *VilleHandler) Liste(c *gin.Context) {
	villes, err := h.geo.ListVilles()
	if err != nil {
		log.Printf("[ville][liste][err] %v", err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	sendResponse(c, http.StatusOK, gin.H{"villes": villes}, "Liste des villes.")
}

// @Summary      Enregistrement d'une ville
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ville  body      VilleRequest  true  "Champs de la ville"
// @Success      201    {object}  map[string]interface{}
// @Failure      422    {object}  map[string]interface{}
// @Router       /adresse/ville/create [post]
func (h *VilleHandler) Create(c *gin.Context) {
	var req VilleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	v, err := h.geo.CreateVille(req.Name, req.RegionID)
	switch {
	case err == nil:
		sendResponse(c, http.StatusCreated, gin.H{"ville": v}, "Element enregistrer avec succès.")
	case errors.Is(err, services.ErrParentNotFound):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"region_id": "Le champ region id sélectionné est invalide"})
	default:
		log.Printf("[ville][create][err] %v", err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
	}
}

// @Summary      Détails d'une ville
// @Tags         Adresse
// @Produce      json
// @Param        id  path  int  true  "Id de la ville"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/ville/show/{id} [get]
func (h *VilleHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de la ville")
	if !ok {
		return
	}
	v, err := h.geo.GetVille(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"ville": v}, "Details de la ville.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de voir les informations de cette ville", nil)
	default:
		log.Printf("[ville][show][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
	}
}

// @Summary      Modification d'une ville
// @Tags         Adresse
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int           true  "Id de la ville"
// @Param        ville  body  VilleRequest  true  "Champs de la ville"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/ville/update/{id} [post]
func (h *VilleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de la ville")
	if !ok {
		return
	}
	var req VilleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"error": err.Error()})
		return
	}
	v, err := h.geo.UpdateVille(id, req.Name, req.RegionID)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{"ville": v}, "Element enregistrer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de modifier les informations de cette ville", nil)
	case errors.Is(err, services.ErrParentNotFound):
		sendError(c, http.StatusUnprocessableEntity, msgValidationError, gin.H{"region_id": "Le champ region id sélectionné est invalide"})
	default:
		log.Printf("[ville][update][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de l'enregistrement des données", nil)
	}
}

// @Summary      Suppression d'une ville
// @Tags         Adresse
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Id de la ville"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /adresse/ville/destroy/{id} [post]
func (h *VilleHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de la ville")
	if !ok {
		return
	}
	err := h.geo.DeleteVille(id)
	switch {
	case err == nil:
		sendResponse(c, http.StatusOK, gin.H{}, "Element supprimer avec succès.")
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, "Impossible de supprimer cette ville", nil)
	default:
		log.Printf("[ville][destroy][err] id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, "Erreur lors de la suppression des données", nil)
	}
}
