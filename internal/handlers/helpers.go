package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/middleware"
	"haolaplus/internal/services"
)

const (
	msgValidationError = "Erreur lors de la validation des données."
	msgProcessingError = "Erreur lors du traitement des données"
)

// parseID lit un identifiant numérique de l'URL ; répond 404 et renvoie false
// quand il est absent ou illisible.
func parseID(c *gin.Context, name, missingMsg string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		sendError(c, http.StatusNotFound, missingMsg, nil)
		return 0, false
	}
	return id, true
}

// requestMeta assemble le contexte de journalisation d'une requête.
func requestMeta(c *gin.Context) services.RequestMeta {
	return services.RequestMeta{
		URL:    c.Request.URL.String(),
		Method: c.Request.Method,
		IP:     c.ClientIP(),
		Agent:  c.Request.UserAgent(),
		User:   middleware.CurrentUser(c),
	}
}
