package profilecache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite"

	"github.com/cattint/cattint/internal/signature"
)

// ErrMiss is returned by Get when no entry exists for the key.
var ErrMiss = errors.New("profilecache: miss")

// Store is a read/write-through signature cache backed by sqlite.
type Store struct {
	db     *sql.DB
	logger hclog.Logger
}

// Open opens (creating if needed) the cache database at path. Pass
// ":memory:" for an ephemeral store.
func Open(path string, logger hclog.Logger) (*Store, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open profile cache: %w", err)
	}
	// One connection keeps :memory: stores coherent and serializes
	// writers on file-backed ones.
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS profiles (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init profile cache schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get loads the cached signature for a key. Returns ErrMiss when the
// key is absent; corrupt payloads are treated as misses too, since
// the cache is always rebuildable.
func (s *Store) Get(key string) (*signature.SiteSignature, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM profiles WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read profile cache: %w", err)
	}

	var sig signature.SiteSignature
	if err := json.Unmarshal(payload, &sig); err != nil {
		s.logger.Warn("dropping corrupt cache entry", "key", key, "error", err)
		return nil, ErrMiss
	}
	return &sig, nil
}

// Put stores a signature under key, replacing any previous entry.
func (s *Store) Put(key string, sig *signature.SiteSignature) error {
	payload, err := json.Marshal(sig)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO profiles (key, payload, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		key, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write profile cache: %w", err)
	}
	return nil
}

// GetOrBuild returns the cached signature for (url, html) or builds
// one with build and caches it. Build errors are never cached.
func (s *Store) GetOrBuild(url, html string, build func() (*signature.SiteSignature, error)) (*signature.SiteSignature, error) {
	key := Key(url, html)

	if sig, err := s.Get(key); err == nil {
		s.logger.Debug("profile cache hit", "url", url)
		return sig, nil
	} else if !errors.Is(err, ErrMiss) {
		return nil, err
	}

	sig, err := build()
	if err != nil {
		return nil, err
	}
	if err := s.Put(key, sig); err != nil {
		return nil, err
	}
	s.logger.Debug("profile cache fill", "url", url)
	return sig, nil
}
