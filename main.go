package main

import (
	"log"

	"github.com/emanuelalzate12-bit/Proyecto/config"
	"github.com/emanuelalzate12-bit/Proyecto/database"
	"github.com/emanuelalzate12-bit/Proyecto/routes"
	"github.com/emanuelalzate12-bit/Proyecto/storage"
	"github.com/emanuelalzate12-bit/Proyecto/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	media := storage.NewMediaStore(cfg.UploadDir)

	r := routes.SetupRouter(db, media)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
