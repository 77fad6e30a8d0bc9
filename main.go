package main

import (
	"log"

	"github.com/joho/godotenv"

	"haolaplus/internal/app"
)

// @title           Haola+ API
// @version         1.0
// @description     API d'authentification, d'adresses et de journal d'activité de la plateforme Haola+.
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] pas de fichier .env, environnement du processus utilisé")
	}
	app.Run()
}
