package main

import (
	"context"
	"log"
	"os"

	"github.com/mogligram/mogligram/internal/buildinfo"
	"github.com/mogligram/mogligram/internal/client/app"
	"github.com/mogligram/mogligram/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
