package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gerry-coffee/internal/config"
	"gerry-coffee/internal/db"
	"gerry-coffee/internal/importer"
	"gerry-coffee/internal/store"
)

func main() {
	path := flag.String("file", "", "path to a products or toppings CSV export")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *path == "" {
		logger.Fatalf("-file is required")
	}
	if cfg.DBConnString == "" {
		logger.Fatalf("DB_DSN is required for imports")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	kind, err := importer.DetectKind(f)
	if err != nil {
		logger.Fatalf("detect csv kind: %v", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		logger.Fatalf("rewind csv: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	imp := importer.NewCSVImporter(f, store.NewPostgres(pool, logger))
	count, err := imp.Run(ctx, kind)
	if err != nil {
		logger.Fatalf("import: %v", err)
	}

	logger.Printf("imported %d %s rows", count, kind)
}
