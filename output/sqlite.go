package output

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// createSnapshots is the schema for persisted statistic snapshots.
const createSnapshots = `
CREATE TABLE IF NOT EXISTS snapshots (
	name      TEXT,
	count     INTEGER,
	min       REAL,
	max       REAL,
	mean      REAL,
	variance  REAL,
	skewness  REAL,
	kurtosis  REAL
);
`

const insertSnapshot = `
INSERT INTO snapshots (name, count, min, max, mean, variance, skewness, kurtosis)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

// SqliteSink persists statistic snapshots to a sqlite3 database so
// long-running collectors can be inspected after the fact.
type SqliteSink struct {
	db *sql.DB
}

// NewSqliteSink opens (or creates) the snapshot database.
func NewSqliteSink(conn string) (*SqliteSink, error) {
	db, err := sql.Open("sqlite3", conn)
	if err != nil {
		return nil, fmt.Errorf("unable to open connection to sqlite3 %s", conn)
	}

	if _, err = db.Exec(createSnapshots); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create the snapshot table; %v", err)
	}

	db.Exec("PRAGMA synchronous = OFF")
	db.Exec("PRAGMA journal_mode = MEMORY")

	return &SqliteSink{db}, nil
}

// Write persists one snapshot row.
func (s *SqliteSink) Write(name string, pr Printable) error {
	min, max := float64(pr.MinInt), float64(pr.MaxInt)
	if pr.Float {
		min, max = pr.MinFloat, pr.MaxFloat
	}

	_, err := s.db.Exec(insertSnapshot,
		name, pr.N, min, max, pr.Mean, pr.Variance, pr.Skewness, pr.Kurtosis)

	return err
}

// Close releases the database handle.
func (s *SqliteSink) Close() error {
	return s.db.Close()
}
