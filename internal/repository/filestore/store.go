// Package filestore keeps every collection in a single JSON document on
// disk. It honors the same identity and ordering contract as the relational
// repositories and is meant for local development.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
)

type document struct {
	Clients         []model.Client         `json:"clients"`
	Prospects       []model.Prospect       `json:"prospects"`
	TransportRates  []model.TransportRate  `json:"transportRates"`
	PriceReferences []model.PriceReference `json:"priceReferences"`
	Users           []userRecord           `json:"users"`
}

// userRecord persists the password hash that model.User hides from JSON.
type userRecord struct {
	model.User
	PasswordHash string `json:"passwordHash"`
}

type File struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

type Option func(*File)

// WithClock replaces the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *File) { f.now = now }
}

// Open prepares the document at path, creating parent directories and an
// empty document when the file does not exist yet.
func Open(path string, opts ...Option) (*File, error) {
	f := &File{path: path, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := f.save(&document{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	if _, err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

// NewStore opens the document and exposes it through the repository interfaces.
func NewStore(path string, opts ...Option) (repository.Store, error) {
	f, err := Open(path, opts...)
	if err != nil {
		return repository.Store{}, err
	}
	return f.Store(), nil
}

func (f *File) Store() repository.Store {
	return repository.Store{
		Clients:         &clientRepository{file: f},
		Prospects:       &prospectRepository{file: f},
		TransportRates:  &transportRateRepository{file: f},
		PriceReferences: &priceReferenceRepository{file: f},
		Users:           &userRepository{file: f},
	}
}

func (f *File) load() (*document, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	doc := &document{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", repository.ErrUnavailable, f.path, err)
	}
	return doc, nil
}

// save replaces the document through a temporary file so readers never see
// a partial write.
func (f *File) save(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".store-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}

func (f *File) read(fn func(doc *document) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// write runs fn on the current document and persists it when fn succeeds.
func (f *File) write(fn func(doc *document) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return f.save(doc)
}

type record[T any] interface {
	*T
	GetBase() *model.Base
}

func indexByID[T any, P record[T]](items []T, id uuid.UUID) int {
	for i := range items {
		if P(&items[i]).GetBase().ID == id {
			return i
		}
	}
	return -1
}

func insert[T any, P record[T]](f *File, items *[]T, item P) error {
	base := item.GetBase()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	} else if indexByID[T, P](*items, base.ID) >= 0 {
		return fmt.Errorf("%w: id %s", repository.ErrConflict, base.ID)
	}
	now := f.now().UTC()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
	*items = append(*items, *item)
	return nil
}

func replace[T any, P record[T]](f *File, items []T, item P) error {
	base := item.GetBase()
	i := indexByID[T, P](items, base.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	base.CreatedAt = P(&items[i]).GetBase().CreatedAt
	base.UpdatedAt = f.now().UTC()
	items[i] = *item
	return nil
}

func remove[T any, P record[T]](items *[]T, id uuid.UUID) error {
	i := indexByID[T, P](*items, id)
	if i < 0 {
		return repository.ErrNotFound
	}
	*items = append((*items)[:i], (*items)[i+1:]...)
	return nil
}

func find[T any, P record[T]](items []T, id uuid.UUID) (*T, error) {
	i := indexByID[T, P](items, id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	found := items[i]
	return &found, nil
}

// newestFirst returns the matching items ordered by creation time
// descending; equal timestamps keep the latest insertion first.
func newestFirst[T any, P record[T]](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		if keep == nil || keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return P(&out[i]).GetBase().CreatedAt.After(P(&out[j]).GetBase().CreatedAt)
	})
	return out
}
