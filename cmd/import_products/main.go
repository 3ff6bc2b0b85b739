package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/souqapp/souq-api/database"
	"github.com/souqapp/souq-api/importer"
)

// import_products loads a CSV of products (columns: title, description,
// price, location) into the catalog. Warnings for skipped rows go to stderr,
// the summary to stdout.
func main() {
	log.SetFlags(0)

	if len(os.Args) != 2 {
		log.Fatal("usage: import_products <csv_path>")
	}

	_ = godotenv.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	res, err := importer.Import(db, os.Args[1], os.Stderr)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Printf("Imported %d products (skipped %d)\n", res.Created, res.Skipped)
}
