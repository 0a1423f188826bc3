package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"helium/internal/adapters/httpapi"
	"helium/internal/application"
	"helium/internal/config"
	"helium/internal/infrastructure/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, "helium-api")
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	keyRepo := database.NewTranslationKeyRepository(pool)
	translationRepo := database.NewTranslationRepository(pool)

	handler := httpapi.NewHandler(
		application.NewTranslationKeyService(keyRepo),
		application.NewTranslationService(translationRepo, logger),
		application.NewLocalizationService(keyRepo, logger),
		application.NewHealthService(keyRepo, logger),
	)

	server := httpapi.NewServer(cfg, handler)
	if err := server.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du serveur: %v", err)
		os.Exit(1)
	}
}
