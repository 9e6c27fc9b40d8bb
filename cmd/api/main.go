package main

import (
	_ "payonom_bridge/docs"
	"payonom_bridge/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payonom Bridge API
// @version         1.0
// @description     Payment-initiation and callback-verification bridge for the Payonom gateway.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
