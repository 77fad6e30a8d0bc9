package handlers

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/pdf"
	"haolaplus/internal/services"
)

type LogHandler struct {
	logs    services.LogActivityService
	reports pdf.Generator
}

func NewLogHandler(logs services.LogActivityService, reports pdf.Generator) *LogHandler {
	return &LogHandler{logs: logs, reports: reports}
}

// @Summary      Liste des logs
// @Tags         Logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /logs/all [get]
func (h *LogHandler) All(c *gin.Context) {
	entries, err := h.logs.ListAll()
	if err != nil {
		log.Printf("[logs][all][err] %v", err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	sendResponse(c, http.StatusOK, gin.H{"logs": entries}, "Liste des logs")
}

// @Summary      Liste des logs d'un utilisateur
// @Tags         Logs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Id de l'utilisateur"
// @Success      200  {object}  map[string]interface{}
// @Router       /logs/user/{id} [get]
func (h *LogHandler) ByUser(c *gin.Context) {
	id, ok := parseID(c, "id", "Veuillez fournir l'id de l'utilisateur")
	if !ok {
		return
	}
	entries, err := h.logs.ListByUser(id)
	if err != nil {
		log.Printf("[logs][user][err] user_id=%d err=%v", id, err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	sendResponse(c, http.StatusOK, gin.H{"logs": entries}, "Liste des logs d'un utilisateur ")
}

// @Summary      Export PDF du journal d'activité
// @Tags         Logs
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  file
// @Router       /logs/export [get]
func (h *LogHandler) Export(c *gin.Context) {
	entries, err := h.logs.ListAll()
	if err != nil {
		log.Printf("[logs][export][err] %v", err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	path, err := h.reports.GenerateLogReport(entries)
	if err != nil {
		log.Printf("[logs][export][err] pdf: %v", err)
		sendError(c, http.StatusInternalServerError, msgProcessingError, nil)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
