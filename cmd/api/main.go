package main

import (
	_ "cobranzas_art/docs"
	"cobranzas_art/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cobranzas ART API
// @version         1.0
// @description     Back office de cobranzas ART: consolidación de deuda, auditoría de lotes y avisos por email. Backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
