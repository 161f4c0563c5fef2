package main

import (
	_ "faturas/docs"
	"faturas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Faturas API
// @version         1.0
// @description     Bill aggregation service: invoice parsing, service reconciliation and payment intents, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Authenticated user identifier forwarded by the gateway.

func main() {
	routes.Run()
}
