package main

import (
	"context"
	"log"

	"personal-crm-be/internal/bootstrap"
	"personal-crm-be/internal/config"
	"personal-crm-be/internal/server"
	"personal-crm-be/internal/tracer"
	"personal-crm-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.Init()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
