package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Toute réponse de l'API passe par ces deux constructeurs ; aucun handler ne
// façonne un corps en dehors de l'enveloppe.

func sendResponse(c *gin.Context, status int, data any, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func sendError(c *gin.Context, status int, message string, data any) {
	if status == 0 {
		status = http.StatusNotFound
	}
	body := gin.H{
		"success": false,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}
