package main

import (
	"vlog-hub/internal/app"
	"vlog-hub/pkg/config"
	"vlog-hub/pkg/logger"

	_ "vlog-hub/docs" // Swagger docs
)

// @title           Vlog Hub API
// @version         1.0
// @description     Moderated vlogs, comments and therapist feedback
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	log := logger.New()

	application, err := app.New(cfg, log)
	if err != nil {
		log.Error("Failed to initialize application: %v", err)
		panic(err)
	}

	application.Run()
	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
