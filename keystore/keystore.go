// Package keystore persists named RSA key pairs in a sqlite database.
// Values are stored as decimal strings, the only key encoding the
// library defines.
package keystore

import (
	"database/sql"
	"math/big"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/erlware-deprecated/ecrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS keys (
	name TEXT PRIMARY KEY,
	n TEXT NOT NULL,
	e TEXT NOT NULL,
	d TEXT NOT NULL,
	max_message TEXT NOT NULL,
	created_at DATETIME NOT NULL
);`

// Store is a sqlite-backed collection of key pairs.
type Store struct {
	db *sql.DB
}

// Open opens the store at path, creating the database and its table as
// needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: open")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "keystore: create table")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a key pair under a name. Names are unique; storing a second
// pair under the same name fails.
func (s *Store) Put(name string, kp *ecrypt.KeyPair) error {
	_, err := s.db.Exec(
		"INSERT INTO keys (name, n, e, d, max_message, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		name,
		kp.Public.N.String(),
		kp.Public.E.String(),
		kp.Private.D.String(),
		kp.MaxMessageSize.String(),
		time.Now().UTC(),
	)
	return errors.Wrapf(err, "keystore: put %q", name)
}

// Get loads the key pair stored under a name.
func (s *Store) Get(name string) (*ecrypt.KeyPair, error) {
	var n, e, d, max string
	err := s.db.QueryRow(
		"SELECT n, e, d, max_message FROM keys WHERE name = ?", name,
	).Scan(&n, &e, &d, &max)
	if err == sql.ErrNoRows {
		return nil, errors.Errorf("keystore: no key named %q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "keystore: get %q", name)
	}

	var kp ecrypt.KeyPair
	for _, f := range []struct {
		column string
		value  string
		dst    **big.Int
	}{
		{"n", n, &kp.Public.N},
		{"e", e, &kp.Public.E},
		{"d", d, &kp.Private.D},
		{"max_message", max, &kp.MaxMessageSize},
	} {
		z, ok := new(big.Int).SetString(f.value, 10)
		if !ok {
			return nil, errors.Errorf("keystore: corrupt %s value %q for key %q",
				f.column, f.value, name)
		}
		*f.dst = z
	}
	kp.Private.N = new(big.Int).Set(kp.Public.N)
	return &kp, nil
}

// List returns the stored key names in lexical order.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM keys ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "keystore: list")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "keystore: list")
		}
		names = append(names, name)
	}
	return names, errors.Wrap(rows.Err(), "keystore: list")
}

// Delete removes the key pair stored under a name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM keys WHERE name = ?", name)
	if err != nil {
		return errors.Wrapf(err, "keystore: delete %q", name)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "keystore: delete %q", name)
	}
	if count == 0 {
		return errors.Errorf("keystore: no key named %q", name)
	}
	return nil
}
