package loader

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"storefront/parsers"
)

var (
	//go:embed schema_sqlite.sql
	sqliteSchema string

	//go:embed schema_postgres.sql
	postgresSchema string
)

const (
	upsertProductSQL = `INSERT INTO products
		(id, product_type, brand, sub_type, price_per_bag, description, website_description,
		 image_url, low_stock_threshold, show_on_website)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			product_type = excluded.product_type,
			brand = excluded.brand,
			sub_type = excluded.sub_type,
			price_per_bag = excluded.price_per_bag,
			description = excluded.description,
			website_description = excluded.website_description,
			image_url = excluded.image_url,
			low_stock_threshold = excluded.low_stock_threshold,
			show_on_website = excluded.show_on_website`

	upsertInventorySQL = `INSERT INTO inventory (product_id, current_stock, last_updated)
		VALUES (?, ?, ?)
		ON CONFLICT (product_id) DO UPDATE SET
			current_stock = excluded.current_stock,
			last_updated = excluded.last_updated`

	upsertSettingSQL = `INSERT INTO website_settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
)

// InitDatabase applies the embedded schema and, when seedDir is set, loads
// products.csv and settings.csv from it. Missing seed files are skipped.
func InitDatabase(db *sqlx.DB, seedDir string) error {
	zap.L().Info("applying database schema")
	if err := ApplySchema(db); err != nil {
		return err
	}
	zap.L().Info("schema applied")

	if seedDir == "" {
		return nil
	}

	productsPath := filepath.Join(seedDir, "products.csv")
	if _, err := os.Stat(productsPath); os.IsNotExist(err) {
		zap.L().Warn("seed file not found, skipping", zap.String("path", productsPath))
	} else if err := LoadProductsCSV(db, productsPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", productsPath, err)
	}

	settingsPath := filepath.Join(seedDir, "settings.csv")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		zap.L().Warn("seed file not found, skipping", zap.String("path", settingsPath))
	} else if err := LoadSettingsCSV(db, settingsPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", settingsPath, err)
	}
	return nil
}

// SchemaFor returns the DDL for a database/sql driver name.
func SchemaFor(driver string) (string, error) {
	switch driver {
	case "sqlite3":
		return sqliteSchema, nil
	case "pgx", "postgres":
		return postgresSchema, nil
	}
	return "", fmt.Errorf("no schema for driver %q", driver)
}

// ApplySchema creates the tables and the website_products view for the
// driver db was opened with.
func ApplySchema(db *sqlx.DB) error {
	schema, err := SchemaFor(db.DriverName())
	if err != nil {
		return err
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// LoadProductsCSV upserts products and their inventory rows in one transaction.
func LoadProductsCSV(db *sqlx.DB, path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer f.Close()

	records, err := parsers.ParseProductCSV(f)
	if err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			zap.L().Warn("rolling back product seed", zap.Error(err))
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range records {
		_, err = tx.Exec(tx.Rebind(upsertProductSQL),
			rec.ID, rec.ProductType, rec.Brand, rec.SubType, rec.PricePerBag, rec.Description,
			rec.WebsiteDescription, rec.ImageURL, rec.LowStockThreshold, rec.ShowOnWebsite)
		if err != nil {
			return fmt.Errorf("failed to insert product %s: %w", rec.ID, err)
		}
		_, err = tx.Exec(tx.Rebind(upsertInventorySQL), rec.ID, rec.CurrentStock, now)
		if err != nil {
			return fmt.Errorf("failed to insert inventory for %s: %w", rec.ID, err)
		}
	}

	zap.L().Info("seeded products", zap.Int("rows", len(records)), zap.String("path", path))
	return nil
}

// LoadSettingsCSV upserts key/value rows into website_settings.
func LoadSettingsCSV(db *sqlx.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer f.Close()

	records, err := parsers.ParseSettingsCSV(f)
	if err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		if _, err := tx.Exec(tx.Rebind(upsertSettingSQL), rec.Key, rec.Value); err != nil {
			return fmt.Errorf("failed to insert setting %s: %w", rec.Key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	zap.L().Info("seeded website settings", zap.Int("rows", len(records)))
	return nil
}
