package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"helium/internal/config"
	"helium/internal/infrastructure/database"
	"helium/internal/infrastructure/i18nimport"
)

func main() {
	dir := flag.String("dir", "locales", "répertoire contenant les fichiers active.*.toml")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, "helium-importer")
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	importer := i18nimport.NewImporter(
		database.NewTranslationKeyRepository(pool),
		database.NewTranslationRepository(pool),
		logger,
	)

	summary, err := importer.ImportDir(ctx, *dir)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'import: %v", err)
	}
	log.Printf("✅ Import terminé: %d fichiers, %d clés, %d traductions",
		summary.Files, summary.Keys, summary.Translations)
}
