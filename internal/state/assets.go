package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/unexotica/internal/amiga"
)

// Asset is the cached result of decoding one file.
type Asset struct {
	Path      string
	Mtime     int64
	Size      int64
	Kind      amiga.Kind
	Subsongs  []int // nil when the file is published whole
	Inputs    string // fingerprint of the settings Subsongs was computed under
	ScannedAt time.Time
}

// Stamp is what a scan compares to decide whether a cached row is stale.
type Stamp struct {
	Mtime  int64
	Inputs string
}

type executor interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// PutAssets inserts or replaces the rows for assets in one transaction.
func (s *Store) PutAssets(assets []Asset) error {
	return WithTx(s.db, func(tx *sql.Tx) error {
		for _, a := range assets {
			if err := putAsset(tx, a); err != nil {
				return err
			}
		}
		return nil
	})
}

func putAsset(ex executor, a Asset) error {
	subsongs, err := json.Marshal(a.Subsongs)
	if err != nil {
		return err
	}
	if a.Subsongs == nil {
		subsongs = []byte("[]")
	}
	scannedAt := a.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}
	_, err = ex.Exec(`
		INSERT INTO assets (path, mtime, size, kind, subsongs, inputs, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			mtime = excluded.mtime,
			size = excluded.size,
			kind = excluded.kind,
			subsongs = excluded.subsongs,
			inputs = excluded.inputs,
			scanned_at = excluded.scanned_at
	`, a.Path, a.Mtime, a.Size, a.Kind.String(), string(subsongs), a.Inputs, scannedAt.Unix())
	if err != nil {
		return fmt.Errorf("store %s: %w", a.Path, err)
	}
	return nil
}

// Asset returns the cached row for path, or nil when there is none.
func (s *Store) Asset(path string) (*Asset, error) {
	row := s.db.QueryRow(`
		SELECT path, mtime, size, kind, subsongs, inputs, scanned_at
		FROM assets WHERE path = ?
	`, path)

	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // not cached yet
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Assets returns every cached row ordered by path.
func (s *Store) Assets() ([]Asset, error) {
	rows, err := s.db.Query(`
		SELECT path, mtime, size, kind, subsongs, inputs, scanned_at
		FROM assets ORDER BY path
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

// Stamps returns path->stamp for cached files under any of prefixes.
// No prefixes means every file.
func (s *Store) Stamps(prefixes []string) (map[string]Stamp, error) {
	rows, err := s.db.Query(`SELECT path, mtime, inputs FROM assets`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stamps := make(map[string]Stamp)
	for rows.Next() {
		var path string
		var st Stamp
		if err := rows.Scan(&path, &st.Mtime, &st.Inputs); err != nil {
			return nil, err
		}
		if len(prefixes) == 0 || hasAnyPrefix(path, prefixes) {
			stamps[path] = st
		}
	}
	return stamps, rows.Err()
}

// DeleteAsset removes the row for path. Deleting a missing row is not an
// error.
func (s *Store) DeleteAsset(path string) error {
	_, err := s.db.Exec(`DELETE FROM assets WHERE path = ?`, path)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(sc scanner) (*Asset, error) {
	var a Asset
	var kind, subsongs string
	var scannedAt int64
	if err := sc.Scan(&a.Path, &a.Mtime, &a.Size, &kind, &subsongs, &a.Inputs, &scannedAt); err != nil {
		return nil, err
	}
	a.Kind = amiga.ParseKind(kind)
	a.ScannedAt = time.Unix(scannedAt, 0)
	if err := json.Unmarshal([]byte(subsongs), &a.Subsongs); err != nil {
		return nil, fmt.Errorf("subsongs of %s: %w", a.Path, err)
	}
	if len(a.Subsongs) == 0 {
		a.Subsongs = nil
	}
	return &a, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
