package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/sq/internal/schema"
)

type sqliteDriver struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database file for schema introspection.
func OpenSQLite(path string) (Driver, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &sqliteDriver{db: handle}, nil
}

func (d *sqliteDriver) Close() error {
	return d.db.Close()
}

// Schema introspects sqlite_master plus the table_info and foreign_key_list
// pragmas. Objects are allocated in rowid order so repeated introspection of
// an unchanged database yields identical IDs.
func (d *sqliteDriver) Schema(ctx context.Context) (*schema.Schema, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT name, type FROM sqlite_master
		 WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'
		 ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("read sqlite_master: %w", err)
	}
	defer rows.Close()

	type object struct {
		name string
		kind string
	}
	var objects []object
	for rows.Next() {
		var o object
		if err := rows.Scan(&o.name, &o.kind); err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s := &schema.Schema{}
	objectIDs := make(map[string]schema.ObjectID, len(objects))
	columnIDs := make(map[string]map[string]schema.ColumnID, len(objects))
	pkColumns := make(map[string][]string, len(objects))

	for _, o := range objects {
		cols, byName, pks, err := d.tableColumns(ctx, s, o.name)
		if err != nil {
			return nil, err
		}
		columnIDs[o.name] = byName
		pkColumns[o.name] = pks

		if o.kind == "view" {
			objectIDs[o.name] = s.AddView(o.name, cols)
		} else {
			objectIDs[o.name] = s.AddTable(o.name, cols, nil)
		}
	}

	// Second pass: foreign keys may point at tables introspected later.
	for _, o := range objects {
		if o.kind != "table" {
			continue
		}
		if err := d.foreignKeys(ctx, s, o.name, objectIDs, columnIDs, pkColumns); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("introspected schema invalid: %w", err)
	}
	return s, nil
}

func (d *sqliteDriver) tableColumns(ctx context.Context, s *schema.Schema, table string) ([]schema.ColumnID, map[string]schema.ColumnID, []string, error) {
	rows, err := d.db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(table)+")")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	var (
		ids    []schema.ColumnID
		byName = make(map[string]schema.ColumnID)
		pks    []string
	)
	for rows.Next() {
		var (
			cid      int
			name     string
			declType sql.NullString
			notNull  int
			dflt     sql.NullString
			pk       int
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dflt, &pk); err != nil {
			return nil, nil, nil, err
		}

		id := s.AddColumn(schema.Column{
			Name:     name,
			Type:     schema.ParseDataType(strings.ToLower(declType.String)),
			Nullable: notNull == 0,
		})
		ids = append(ids, id)
		byName[name] = id
		if pk > 0 {
			pks = append(pks, name)
		}
	}
	return ids, byName, pks, rows.Err()
}

func (d *sqliteDriver) foreignKeys(ctx context.Context, s *schema.Schema, table string,
	objectIDs map[string]schema.ObjectID,
	columnIDs map[string]map[string]schema.ColumnID,
	pkColumns map[string][]string) error {

	rows, err := d.db.QueryContext(ctx, "PRAGMA foreign_key_list("+quoteIdent(table)+")")
	if err != nil {
		return fmt.Errorf("foreign_key_list %s: %w", table, err)
	}
	defer rows.Close()

	var fks []schema.ForeignKey
	for rows.Next() {
		var (
			id, seq                   int
			refTable, from            string
			to                        sql.NullString
			onUpdate, onDelete, match string
		)
		if err := rows.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return err
		}

		localID, ok := columnIDs[table][from]
		if !ok {
			continue
		}
		refID, ok := objectIDs[refTable]
		if !ok {
			// Dangling FK (referenced table dropped); skip rather than fail.
			continue
		}

		// A NULL "to" means the FK targets the referenced table's primary key.
		refColumn := to.String
		if refColumn == "" {
			pks := pkColumns[refTable]
			if len(pks) == 0 {
				continue
			}
			refColumn = pks[0]
		}
		refColID, ok := columnIDs[refTable][refColumn]
		if !ok {
			continue
		}

		fks = append(fks, schema.ForeignKey{
			Column:    localID,
			RefObject: refID,
			RefColumn: refColID,
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(fks) > 0 {
		obj, _ := s.Object(objectIDs[table])
		obj.ForeignKeys = fks
	}
	return nil
}

// quoteIdent quotes a name for interpolation into a PRAGMA, which cannot
// take bound parameters.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
