package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool ouvre un pool pgx vers PostgreSQL et vérifie la connexion.
// appName est publié comme application_name pour distinguer les processus
// (serveur, importeur) côté base.
func NewPool(ctx context.Context, dsn, appName string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("configuration du pool: %w", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = appName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("création du pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping de la base: %w", err)
	}
	log.Printf("✅ Base de données PostgreSQL connectée (%s).", appName)
	return pool, nil
}
