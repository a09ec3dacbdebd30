package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"route-suggestion-service/internal/adapters/ingest"
	"route-suggestion-service/internal/adapters/repositories"
	"route-suggestion-service/internal/adapters/results"
	"route-suggestion-service/internal/api"
	"route-suggestion-service/internal/config"
	"route-suggestion-service/internal/ports"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := os.Getenv("SEED_XLSX")
	seedSheet := config.Get("SEED_SHEET", "REP PLR")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema, and seed from the sales workbook when one is configured.
	if err := initAndSeed(db, seedPath, seedSheet); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLCustomerRepository(db)
	router := api.NewRouter(repo, resultStore())

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// resultStore returns a Redis-backed store when REDIS_ADDR is set and an
// in-process store otherwise, so local runs need no extra services.
func resultStore() ports.ResultStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, using in-memory result store")
		return results.NewMemoryResultStore()
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("RESULT_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid RESULT_TTL %q: %v", v, err)
		}
		ttl = parsed
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Printf("Using Redis result store addr=%s ttl=%s", addr, ttl)
	return results.NewRedisResultStore(client, ttl)
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath, seedSheet string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if seedPath == "" {
		return nil
	}

	if err := repositories.SeedFromWorkbook(db, seedPath, seedSheet, columnMapFromEnv()); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// columnMapFromEnv allows workbook header names to be overridden per
// deployment; unset variables keep the standard sales-report headers.
func columnMapFromEnv() ingest.ColumnMap {
	cols := ingest.DefaultColumnMap()
	set := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set("COL_DEPOT", &cols.Depot)
	set("COL_CUSTOMER_ID", &cols.CustomerID)
	set("COL_CUSTOMER_NAME", &cols.Name)
	set("COL_VOLUME", &cols.Volume)
	set("COL_LATITUDE", &cols.Latitude)
	set("COL_LONGITUDE", &cols.Longitude)
	set("COL_ROUTE_DIST", &cols.RouteDist)
	return cols
}
