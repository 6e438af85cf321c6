// Command townbook-mockd runs the bundled mock backend: every endpoint
// the SDK talks to, served from the static fixtures with production-like
// payload shapes. Useful for offline demos and frontend development.
package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/townbook/client-go/mockdata"
	"github.com/townbook/client-go/routes"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using environment")
	}

	store := mockdata.NewStore()

	r := gin.Default()
	routes.SetupRoutes(r, store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// Browser clients hit this server directly during development.
	handler := cors.AllowAll().Handler(r)

	log.WithField("port", port).Info("starting mock backend")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
