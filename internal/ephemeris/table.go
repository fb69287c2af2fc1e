package ephemeris

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"starluck/internal/astro"
	"starluck/internal/types"

	_ "modernc.org/sqlite"
)

const tableName = "table"

// Row is one tabulated position
type Row struct {
	Body      types.Body
	JulianDay float64
	Longitude float64
	Latitude  float64
}

// Table serves positions from a SQLite file filled by ephemgen. Positions
// between rows are interpolated linearly along the shorter arc.
type Table struct {
	db   *sql.DB
	path string
}

// OpenTable opens (creating if needed) the ephemeris table at path
func OpenTable(path string) (*Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ephemeris table %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("verify ephemeris table %q: %w", path, err)
	}

	t := &Table{db: db, path: path}
	if err := t.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return t, nil
}

func (t *Table) initSchema() error {
	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS positions (
		body TEXT NOT NULL,
		jd REAL NOT NULL,
		lon REAL NOT NULL,
		lat REAL NOT NULL,
		PRIMARY KEY (body, jd)
	);
	`,
	}

	for i, stmt := range statements {
		if _, err := t.db.Exec(stmt); err != nil {
			return fmt.Errorf("init ephemeris schema: exec statement #%d: %w", i+1, err)
		}
	}
	return nil
}

func (t *Table) Name() string {
	return tableName
}

// Path returns the database file backing the table
func (t *Table) Path() string {
	return t.path
}

func (t *Table) Close() error {
	return t.db.Close()
}

// Insert stores rows in one transaction, replacing rows with the same
// body and Julian day.
func (t *Table) Insert(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert positions: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO positions (body, jd, lon, lat)
	VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("insert positions: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.Body.String(), r.JulianDay, types.Norm360(r.Longitude), r.Latitude); err != nil {
			return fmt.Errorf("insert positions body=%s jd=%f: %w", r.Body, r.JulianDay, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert positions commit: %w", err)
	}
	return nil
}

// Coverage returns the first and last tabulated Julian day for body
func (t *Table) Coverage(body types.Body) (first, last float64, err error) {
	var lo, hi sql.NullFloat64
	err = t.db.QueryRow(`SELECT MIN(jd), MAX(jd) FROM positions WHERE body = ?`, body.String()).Scan(&lo, &hi)
	if err != nil {
		return 0, 0, fmt.Errorf("coverage %s: %w", body, err)
	}
	if !lo.Valid {
		return 0, 0, &UnsupportedBodyError{Body: body, Backend: tableName}
	}
	return lo.Float64, hi.Float64, nil
}

// Position interpolates between the rows bracketing the instant. Speed
// and retrograde come from the motion across the bracket.
func (t *Table) Position(body types.Body, at astro.Instant) (types.BodyPosition, error) {
	if body == types.PartOfFortune {
		return types.BodyPosition{}, &UnsupportedBodyError{Body: body, Backend: tableName}
	}

	jd := at.JulianDay
	lo, loErr := t.row(body, `jd <= ? ORDER BY jd DESC`, jd)
	hi, hiErr := t.row(body, `jd > ? ORDER BY jd ASC`, jd)

	switch {
	case loErr == nil && hiErr == nil:
	case loErr == nil && errors.Is(hiErr, sql.ErrNoRows) && lo.JulianDay == jd:
		// exactly on the last row, use the segment ending there
		prev, err := t.row(body, `jd < ? ORDER BY jd DESC`, jd)
		if err != nil {
			return types.BodyPosition{}, t.missing(body, jd, err)
		}
		lo, hi = prev, lo
	case loErr != nil && !errors.Is(loErr, sql.ErrNoRows):
		return types.BodyPosition{}, fmt.Errorf("query positions: %w", loErr)
	case hiErr != nil && !errors.Is(hiErr, sql.ErrNoRows):
		return types.BodyPosition{}, fmt.Errorf("query positions: %w", hiErr)
	default:
		return types.BodyPosition{}, t.missing(body, jd, sql.ErrNoRows)
	}

	span := hi.JulianDay - lo.JulianDay
	frac := (jd - lo.JulianDay) / span
	delta := types.SignedDelta(lo.Longitude, hi.Longitude)

	pos := types.BodyPosition{
		Body:      body,
		Longitude: types.Norm360(lo.Longitude + frac*delta),
		Latitude:  lo.Latitude + frac*(hi.Latitude-lo.Latitude),
		Speed:     delta / span,
	}
	pos.Retrograde = pos.Speed < 0
	return pos, nil
}

func (t *Table) row(body types.Body, where string, jd float64) (Row, error) {
	r := Row{Body: body}
	q := `SELECT jd, lon, lat FROM positions WHERE body = ? AND ` + where + ` LIMIT 1`
	err := t.db.QueryRow(q, body.String(), jd).Scan(&r.JulianDay, &r.Longitude, &r.Latitude)
	return r, err
}

// missing distinguishes a body with no rows at all from an instant
// outside the tabulated range.
func (t *Table) missing(body types.Body, jd float64, cause error) error {
	if !errors.Is(cause, sql.ErrNoRows) {
		return fmt.Errorf("query positions: %w", cause)
	}
	first, last, err := t.Coverage(body)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s at JD %.5f, table covers %.5f to %.5f", ErrOutOfRange, body, jd, first, last)
}
