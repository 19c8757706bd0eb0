package main

import (
	"log"
	"os"
	"time"

	"servihub-backend/db"
	_ "servihub-backend/docs"
	"servihub-backend/routes"
	"servihub-backend/utils"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// @title ServiHub Reports API
// @version 1.0
// @description API de gestion des signalements ServiHub
// @host localhost:8080
// @BasePath /
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()
	db.Seed()

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			utils.LogError(err, "Avertissement: Initialisation de Sentry a échoué")
		}
		defer sentry.Flush(2 * time.Second)
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
