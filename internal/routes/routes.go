package routes

import (
	"github.com/gin-gonic/gin"

	"haolaplus/internal/handlers"
)

// SetupRoutes câble la table des routes de l'API v1. authRequired est le
// middleware d'authentification par jeton bearer ; les listes et détails
// d'adresse restent publics, comme le reste du groupe d'authentification.
func SetupRoutes(
	r *gin.Engine,
	authRequired gin.HandlerFunc,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	passwordHandler *handlers.PasswordHandler,
	paysHandler *handlers.PaysHandler,
	regionHandler *handlers.RegionHandler,
	villeHandler *handlers.VilleHandler,
	quartierHandler *handlers.QuartierHandler,
	logHandler *handlers.LogHandler,
) *gin.Engine {

	v1 := r.Group("/api/v1")

	// ---- public
	v1.POST("/register", authHandler.Register)
	v1.GET("/email/verify/:id", authHandler.VerifyEmail)
	v1.POST("/code/verify/:id", authHandler.ConfirmTelephone)
	v1.POST("/code/otp/verify", passwordHandler.ResetOTP)
	v1.POST("/login", authHandler.Login)

	v1.POST("/password/email", passwordHandler.ForgotEmail)
	v1.POST("/password/telephone", passwordHandler.ForgotTelephone)
	v1.POST("/password/code/check", passwordHandler.CodeCheck)
	v1.POST("/password/reset", passwordHandler.Reset)

	// ---- user (bearer)
	user := v1.Group("/user", authRequired)
	{
		user.GET("/email/resend", userHandler.ResendEmail)
		user.GET("/code/resend", userHandler.ResendOTP)
		user.GET("/info", userHandler.Info)
		user.POST("/edit", userHandler.Edit)
		user.POST("/logout", userHandler.Logout)
		user.POST("/remove", userHandler.Remove)
		user.GET("/activation/:id/:status", userHandler.Activation)
	}

	// ---- logs (bearer)
	logs := v1.Group("/logs", authRequired)
	{
		logs.GET("/all", logHandler.All)
		logs.GET("/user/:id", logHandler.ByUser)
		logs.GET("/export", logHandler.Export)
	}

	// ---- adresse : liste et show publics, écritures sous jeton
	adresse := v1.Group("/adresse")
	{
		pays := adresse.Group("/pays")
		{
			pays.GET("/liste", paysHandler.Liste)
			pays.GET("/show/:id", paysHandler.Show)
			pays.POST("/create", authRequired, paysHandler.Create)
			pays.POST("/update/:id", authRequired, paysHandler.Update)
			pays.POST("/destroy/:id", authRequired, paysHandler.Destroy)
		}
		region := adresse.Group("/region")
		{
			region.GET("/liste", regionHandler.Liste)
			region.GET("/show/:id", regionHandler.Show)
			region.POST("/create", authRequired, regionHandler.Create)
			region.POST("/update/:id", authRequired, regionHandler.Update)
			region.POST("/destroy/:id", authRequired, regionHandler.Destroy)
		}
		ville := adresse.Group("/ville")
		{
			ville.GET("/liste", villeHandler.Liste)
			ville.GET("/show/:id", villeHandler.Show)
			ville.POST("/create", authRequired, villeHandler.Create)
			ville.POST("/update/:id", authRequired, villeHandler.Update)
			ville.POST("/destroy/:id", authRequired, villeHandler.Destroy)
		}
		quartier := adresse.Group("/quartier")
		{
			quartier.GET("/liste", quartierHandler.Liste)
			quartier.GET("/show/:id", quartierHandler.Show)
			quartier.POST("/create", authRequired, quartierHandler.Create)
			quartier.POST("/update/:id", authRequired, quartierHandler.Update)
			quartier.POST("/destroy/:id", authRequired, quartierHandler.Destroy)
		}
	}

	return r
}
