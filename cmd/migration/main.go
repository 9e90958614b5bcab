package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dcontreras/resort-ops/internal/infrastructure/postgres"
	"github.com/dcontreras/resort-ops/pkg/config"
	"github.com/dcontreras/resort-ops/pkg/logger"
)

// migration una migración versionada. El SQL de up debe ser idempotente
// (IF NOT EXISTS) porque el control de versión es por nombre, no por hash.
type migration struct {
	version string
	up      string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := runMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("ejecutar migraciones")
	}
	log.Info().Msg("migraciones ejecutadas con éxito")
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("crear tabla de migraciones: %w", err)
	}

	for _, m := range migrations {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("consultar migración %s: %w", m.version, err)
		}
		if exists {
			continue
		}
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("abrir transacción para %s: %w", m.version, err)
		}
		if _, err := tx.Exec(ctx, m.up); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("aplicar %s: %w", m.version, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("registrar %s: %w", m.version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("confirmar %s: %w", m.version, err)
		}
	}
	return nil
}

var migrations = []migration{
	{
		version: "001_usuarios_y_locaciones",
		up: `
			CREATE TABLE IF NOT EXISTS users (
				id            UUID PRIMARY KEY,
				code          VARCHAR(10) UNIQUE NOT NULL,
				name          VARCHAR(255) NOT NULL,
				email         VARCHAR(255) UNIQUE NOT NULL,
				password_hash VARCHAR(255) NOT NULL,
				role          VARCHAR(20) NOT NULL,
				phone         VARCHAR(30) NOT NULL DEFAULT '',
				document      VARCHAR(30) NOT NULL DEFAULT '',
				status        VARCHAR(10) NOT NULL DEFAULT 'active',
				created_at    TIMESTAMP NOT NULL,
				updated_at    TIMESTAMP NOT NULL
			);

			CREATE TABLE IF NOT EXISTS locations (
				id         UUID PRIMARY KEY,
				kind       VARCHAR(10) NOT NULL,
				code       VARCHAR(20) UNIQUE NOT NULL,
				capacity   INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_locations_kind ON locations(kind);
		`,
	},
	{
		version: "002_clientes_y_proveedores",
		up: `
			CREATE TABLE IF NOT EXISTS customers (
				id                  UUID PRIMARY KEY,
				code                VARCHAR(10) UNIQUE NOT NULL,
				name                VARCHAR(255) NOT NULL,
				identification_kind VARCHAR(1) NOT NULL,
				document            VARCHAR(30) UNIQUE NOT NULL,
				address             VARCHAR(255) NOT NULL DEFAULT '',
				phone               VARCHAR(30) NOT NULL DEFAULT '',
				kind                VARCHAR(10) NOT NULL,
				villa_id            UUID REFERENCES locations(id),
				mesa_id             UUID REFERENCES locations(id),
				created_at          TIMESTAMP NOT NULL,
				updated_at          TIMESTAMP NOT NULL
			);

			CREATE TABLE IF NOT EXISTS suppliers (
				id         UUID PRIMARY KEY,
				code       VARCHAR(10) UNIQUE NOT NULL,
				name       VARCHAR(255) NOT NULL,
				phone      VARCHAR(30) NOT NULL DEFAULT '',
				email      VARCHAR(255) NOT NULL DEFAULT '',
				address    VARCHAR(255) NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);
		`,
	},
	{
		version: "003_catalogo",
		up: `
			CREATE TABLE IF NOT EXISTS categories (
				id          UUID PRIMARY KEY,
				code        VARCHAR(10) UNIQUE NOT NULL,
				name        VARCHAR(255) NOT NULL,
				name_key    VARCHAR(255) UNIQUE NOT NULL,
				description VARCHAR(500) NOT NULL DEFAULT '',
				created_at  TIMESTAMP NOT NULL,
				updated_at  TIMESTAMP NOT NULL
			);

			CREATE TABLE IF NOT EXISTS warehouses (
				id         UUID PRIMARY KEY,
				code       VARCHAR(10) UNIQUE NOT NULL,
				name       VARCHAR(255) NOT NULL,
				name_key   VARCHAR(255) UNIQUE NOT NULL,
				kind       VARCHAR(15) NOT NULL,
				location   VARCHAR(255) NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE TABLE IF NOT EXISTS articles (
				id          UUID PRIMARY KEY,
				code        VARCHAR(10) UNIQUE NOT NULL,
				name        VARCHAR(255) NOT NULL,
				name_key    VARCHAR(255) UNIQUE NOT NULL,
				category_id UUID NOT NULL REFERENCES categories(id),
				unit        VARCHAR(15) NOT NULL,
				unit_price  NUMERIC(14,2) NOT NULL DEFAULT 0,
				created_at  TIMESTAMP NOT NULL,
				updated_at  TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category_id);
		`,
	},
	{
		version: "004_stock",
		up: `
			CREATE TABLE IF NOT EXISTS stock (
				article_id   UUID NOT NULL REFERENCES articles(id),
				warehouse_id UUID NOT NULL REFERENCES warehouses(id),
				quantity     NUMERIC(14,3) NOT NULL DEFAULT 0,
				updated_at   TIMESTAMP NOT NULL,
				PRIMARY KEY (article_id, warehouse_id)
			);
		`,
	},
	{
		version: "005_ordenes",
		up: `
			CREATE TABLE IF NOT EXISTS orders (
				id                UUID PRIMARY KEY,
				code              VARCHAR(10) UNIQUE NOT NULL,
				user_id           UUID NOT NULL REFERENCES users(id),
				customer_id       UUID NOT NULL REFERENCES customers(id),
				customer_document VARCHAR(30) NOT NULL DEFAULT '',
				villa_code        VARCHAR(20) NOT NULL DEFAULT '',
				mesa_code         VARCHAR(20) NOT NULL DEFAULT '',
				status            VARCHAR(10) NOT NULL,
				service_pct       NUMERIC(5,2) NOT NULL DEFAULT 0,
				tax_pct           NUMERIC(5,2) NOT NULL DEFAULT 0,
				discount_pct      NUMERIC(5,2) NOT NULL DEFAULT 0,
				net_total         NUMERIC(14,2) NOT NULL DEFAULT 0,
				final_total       NUMERIC(14,2) NOT NULL DEFAULT 0,
				created_at        TIMESTAMP NOT NULL,
				closed_at         TIMESTAMP
			);

			CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);

			CREATE TABLE IF NOT EXISTS order_items (
				id           UUID PRIMARY KEY,
				order_id     UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
				article_id   UUID NOT NULL REFERENCES articles(id),
				warehouse_id UUID NOT NULL REFERENCES warehouses(id),
				quantity     INTEGER NOT NULL,
				unit_price   NUMERIC(14,2) NOT NULL,
				created_by   UUID NOT NULL REFERENCES users(id),
				created_at   TIMESTAMP NOT NULL,
				updated_at   TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
		`,
	},
	{
		version: "006_movimientos",
		up: `
			CREATE TABLE IF NOT EXISTS movements (
				id           UUID PRIMARY KEY,
				code         VARCHAR(10) UNIQUE NOT NULL,
				article_id   UUID NOT NULL REFERENCES articles(id),
				warehouse_id UUID NOT NULL REFERENCES warehouses(id),
				kind         VARCHAR(10) NOT NULL,
				quantity     NUMERIC(14,3) NOT NULL,
				order_id     UUID REFERENCES orders(id),
				reason       VARCHAR(255) NOT NULL DEFAULT '',
				description  VARCHAR(500) NOT NULL DEFAULT '',
				created_at   TIMESTAMP NOT NULL,
				created_by   UUID NOT NULL REFERENCES users(id)
			);

			CREATE INDEX IF NOT EXISTS idx_movements_article ON movements(article_id, created_at);
			CREATE INDEX IF NOT EXISTS idx_movements_warehouse ON movements(warehouse_id, created_at);
			CREATE INDEX IF NOT EXISTS idx_movements_order ON movements(order_id);
		`,
	},
}
