package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/newsdesk/internal/mockapi"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := mockapi.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
