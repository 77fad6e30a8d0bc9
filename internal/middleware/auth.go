package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"haolaplus/internal/models"
	"haolaplus/internal/repositories"
	"haolaplus/internal/services"
)

const contextUserKey = "currentUser"

// Auth authentifie le porteur du jeton opaque et pose l'utilisateur dans le
// contexte gin. Jeton absent, inconnu ou utilisateur supprimé → 401.
func Auth(tokens services.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		plain, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || plain == "" {
			abortUnauthorized(c)
			return
		}
		token, err := tokens.Authenticate(plain)
		if err != nil || token == nil {
			abortUnauthorized(c)
			return
		}
		user, err := users.GetByID(token.UserID)
		if err != nil || user == nil {
			abortUnauthorized(c)
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Non authentifié.",
	})
}

// CurrentUser relit l'utilisateur posé par Auth ; nil hors groupe authentifié.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
