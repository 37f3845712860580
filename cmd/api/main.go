package main

import (
	_ "assistec_os/docs"
	"assistec_os/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Assistec OS API
// @version         1.0
// @description     Service-order backend (OS lifecycle + notifications) backed by DynamoDB, with AI-assisted diagnosis.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey UsuarioID
// @in header
// @name X-Usuario-ID
// @description User identity injected by the session middleware in front of this service.

func main() {
	routes.Run()
}
