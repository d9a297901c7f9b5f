// Command main runs the database seeder for adboard.
package main

import (
	"flag"
	"log"

	"adboard/internal/config"
	"adboard/internal/database"
	"adboard/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	maxAds := flag.Int("max-ads", 5, "Maximum advertisements per user")
	flag.Parse()

	log.Printf("Database seeder: %d users, up to %d ads each", *numUsers, *maxAds)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.NewFactory(db).Run(*numUsers, *maxAds); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
