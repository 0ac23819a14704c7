// Standalone admin seeding utility.
//
// The main application seeds a default admin on first migration; this script
// recreates one after the account was deleted or the password was lost.
//
// Usage: go run scripts/seed_admin.go

package main

import (
	"log"
	"os"

	"github.com/rawan03ayman/Employee-Training-System/internal/config"
	"github.com/rawan03ayman/Employee-Training-System/pkg/database"
	"github.com/rawan03ayman/Employee-Training-System/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := database.SeedDefaultAdmin(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("done")
}
