package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/mpcportal/admissions/internal/server"
	"github.com/mpcportal/admissions/internal/server/config"
)

func main() {
	// A missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
