package main

import (
	"context"
	"log"

	"github.com/plantcare-app/plantcare/internal/app"
	"github.com/plantcare-app/plantcare/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	a, err := app.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	a.Run(context.Background())
}
