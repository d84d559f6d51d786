// Package store implements the flat-file persistence layer. Each collection
// is one UTF-8 JSON file rewritten wholesale on every mutation.
//
// Contract (kept compatible with the existing dados/ files):
//   - Load on a missing, unreadable or corrupt file yields the zero value and
//     no error. Corruption is logged, never surfaced.
//   - Save replaces the entire file via write-temp-then-rename, so a crash
//     mid-write can never leave a half-written collection behind.
//
// A per-collection mutex serializes writers inside this process. Writers in
// OTHER processes still race with last-write-wins semantics; that lost-update
// window is a property of the file format and is documented, not fixed.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Collection names. Each maps to one JSON file under the data dir.
const (
	ColUsuarios   = "usuarios"
	ColClientes   = "clientes"
	ColProdutos   = "produtos"
	ColTemplates  = "templates_zap"
	ColConfigLoja = "config_loja"
)

func init() {
	// The data files store prices as plain JSON numbers; keep it that way.
	decimal.MarshalJSONWithoutQuotes = true
}

// Store reads and writes whole JSON collections under a base directory.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Path returns the file backing a collection (also the backup surface).
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Load decodes a collection into v. Missing file, read failure or invalid
// JSON all leave v untouched and return nil: callers always see a usable
// (possibly empty) collection.
func (s *Store) Load(collection string, v any) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.Path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Str("colecao", collection).Err(err).Msg("store: arquivo ilegível, coleção tratada como vazia")
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn().Str("colecao", collection).Err(err).Msg("store: JSON inválido, coleção tratada como vazia")
		return nil
	}
	return nil
}

// Save overwrites the whole collection file. The write goes to a temp file in
// the same directory followed by a rename, which is atomic on POSIX.
func (s *Store) Save(collection string, v any) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	target := s.Path(collection)
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// Exists reports whether the collection file is present on disk.
func (s *Store) Exists(collection string) bool {
	_, err := os.Stat(s.Path(collection))
	return err == nil
}
