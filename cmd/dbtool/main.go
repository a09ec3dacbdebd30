package main

import (
	"database/sql"
	"log"
	"os"
	"route-suggestion-service/internal/adapters/ingest"
	"route-suggestion-service/internal/adapters/repositories"
	"route-suggestion-service/internal/config"
	"route-suggestion-service/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes and seeds a Postgres instance from the sales workbook.
// The server runs against SQLite by default; this tool targets shared
// environments where several instances read the same customer data.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := os.Getenv("SEED_XLSX")
	if strings.TrimSpace(seedPath) == "" {
		log.Fatal("SEED_XLSX is required")
	}
	seedSheet := config.Get("SEED_SHEET", "REP PLR")

	initAndSeed(db, seedPath, seedSheet)
}

func initAndSeed(db *sql.DB, seedPath, seedSheet string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding customer rows...")
	if err := repositories.SeedFromWorkbook(db, seedPath, seedSheet, ingest.DefaultColumnMap()); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
