// Package mysql implements the one-shot relational snapshot that seeds the
// JSON data directory from the legacy MySQL database.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/siriart/billing-admin/internal/infrastructure/jsonstore"
)

// Connect opens a pooled connection and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return db, nil
}

type Exporter struct {
	db    *sql.DB
	store *jsonstore.Store
	log   zerolog.Logger
}

func NewExporter(db *sql.DB, store *jsonstore.Store, log zerolog.Logger) *Exporter {
	return &Exporter{db: db, store: store, log: log}
}

// Run snapshots the relational tables into the JSON documents the server
// reads at runtime. Bill items are folded into their parent bill under a
// nested "items" field, keyed on billId.
func (e *Exporter) Run(ctx context.Context) error {
	bills, err := e.queryAll(ctx, "SELECT * FROM Bills")
	if err != nil {
		return err
	}
	items, err := e.queryAll(ctx, "SELECT * FROM BillItems")
	if err != nil {
		return err
	}

	byBill := make(map[string][]map[string]any)
	for _, item := range items {
		key := fmt.Sprint(item["billId"])
		byBill[key] = append(byBill[key], item)
	}
	for _, bill := range bills {
		nested := byBill[fmt.Sprint(bill["id"])]
		if nested == nil {
			nested = []map[string]any{}
		}
		bill["items"] = nested
	}
	if err := e.write("bills", bills); err != nil {
		return err
	}

	flat := map[string]string{
		"products": "SELECT * FROM Products",
		"stores":   "SELECT * FROM Stores",
		"users":    "SELECT * FROM Users",
		"settings": "SELECT * FROM SystemSettings",
	}
	for name, query := range flat {
		rows, err := e.queryAll(ctx, query)
		if err != nil {
			return err
		}
		if err := e.write(name, rows); err != nil {
			return err
		}
	}

	// The notifications table only exists on newer schemas.
	ok, err := e.tableExists(ctx, "notifications")
	if err != nil {
		return err
	}
	if ok {
		rows, err := e.queryAll(ctx, "SELECT * FROM notifications")
		if err != nil {
			return err
		}
		if err := e.write("notifications", rows); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) write(name string, rows []map[string]any) error {
	if err := e.store.Write(name, rows); err != nil {
		return fmt.Errorf("write %s.json: %w", name, err)
	}
	e.log.Info().Str("resource", name).Int("rows", len(rows)).Msg("exported")
	return nil
}

// queryAll scans every row into a column-name map so the export keeps working
// when columns are added to the legacy schema.
func (e *Exporter) queryAll(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(cols))
		for i, col := range cols {
			v := values[i]
			// The driver hands back []byte for text columns; keep JSON output
			// as strings rather than base64 blobs.
			if b, isBytes := v.([]byte); isBytes {
				record[col] = string(b)
			} else {
				record[col] = v
			}
		}
		out = append(out, record)
	}

	return out, rows.Err()
}

func (e *Exporter) tableExists(ctx context.Context, name string) (bool, error) {
	var found string
	err := e.db.QueryRowContext(ctx, "SHOW TABLES LIKE ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
