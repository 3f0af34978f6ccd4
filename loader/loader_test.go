package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitDatabaseSeedsFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), []byte(
		"id,product_type,brand,sub_type,price_per_bag,current_stock\n"+
			"p1,opc,Lucky,Grade 53,1250,500\n"+
			"p2,src,Maple Leaf,,1190,0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.csv"), []byte(
		"key,value\n"+
			`company_info,"{""name"":""Cement Co""}"`+"\n"), 0o644))

	db := memoryDB(t)
	require.NoError(t, InitDatabase(db, dir))
	// a second run upserts instead of failing
	require.NoError(t, InitDatabase(db, dir))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM website_products`))
	assert.Equal(t, 2, count)

	var status string
	require.NoError(t, db.Get(&status, `SELECT stock_status FROM website_products WHERE id = 'p2'`))
	assert.Equal(t, "out_of_stock", status)

	var value string
	require.NoError(t, db.Get(&value, `SELECT value FROM website_settings WHERE key = 'company_info'`))
	assert.JSONEq(t, `{"name":"Cement Co"}`, value)
}

func TestInitDatabaseWithoutSeeds(t *testing.T) {
	db := memoryDB(t)
	require.NoError(t, InitDatabase(db, t.TempDir()))
	require.NoError(t, InitDatabase(db, ""))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM products`))
	assert.Equal(t, 0, count)
}

func TestSchemaFor(t *testing.T) {
	lite, err := SchemaFor("sqlite3")
	require.NoError(t, err)
	assert.Contains(t, lite, "CREATE VIEW IF NOT EXISTS website_products")

	for _, driver := range []string{"pgx", "postgres"} {
		pg, err := SchemaFor(driver)
		require.NoError(t, err)
		assert.Contains(t, pg, "CREATE OR REPLACE VIEW website_products")
		assert.Contains(t, pg, "WHERE p.show_on_website;")
		assert.NotContains(t, pg, "VIEW IF NOT EXISTS")
		assert.NotContains(t, pg, "DEFAULT 1")
	}

	_, err = SchemaFor("mysql")
	assert.Error(t, err)
}

func TestUpsertsRebindForPostgres(t *testing.T) {
	assert.Equal(t, sqlx.DOLLAR, sqlx.BindType("pgx"))
	for _, q := range []string{upsertProductSQL, upsertInventorySQL, upsertSettingSQL} {
		bound := sqlx.Rebind(sqlx.DOLLAR, q)
		assert.NotContains(t, bound, "?")
		assert.Contains(t, bound, "$2")
		assert.Contains(t, bound, "ON CONFLICT")
	}
	assert.Contains(t, sqlx.Rebind(sqlx.DOLLAR, upsertProductSQL), "$10")
}

// sqlite accepts $N parameters, so a pgx-named handle over the same
// connection runs the dollar-bound statements.
func TestLoadWithDollarPlaceholders(t *testing.T) {
	db := memoryDB(t)
	require.NoError(t, ApplySchema(db))
	dollar := sqlx.NewDb(db.DB, "pgx")

	dir := t.TempDir()
	products := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(products, []byte(
		"id,product_type,brand,price_per_bag,current_stock\np1,opc,Lucky,1250,500\n"), 0o644))
	settings := filepath.Join(dir, "settings.csv")
	require.NoError(t, os.WriteFile(settings, []byte("key,value\ntheme,\"\"\"dark\"\"\"\n"), 0o644))

	require.NoError(t, LoadProductsCSV(dollar, products))
	require.NoError(t, LoadProductsCSV(dollar, products))
	require.NoError(t, LoadSettingsCSV(dollar, settings))

	var stock int64
	require.NoError(t, db.Get(&stock, `SELECT current_stock FROM inventory WHERE product_id = 'p1'`))
	assert.Equal(t, int64(500), stock)

	var value string
	require.NoError(t, db.Get(&value, `SELECT value FROM website_settings WHERE key = 'theme'`))
	assert.Equal(t, `"dark"`, value)
}
