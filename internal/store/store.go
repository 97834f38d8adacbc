package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/plans/internal/db"
	"github.com/alexanderramin/plans/internal/domain"
	"github.com/alexanderramin/plans/internal/repository"
)

// ExportFilename is the fixed name offered for exported documents.
const ExportFilename = "plans-export.json"

// ErrNotObject is returned by Import when the supplied data parses as JSON
// but is not a JSON object.
var ErrNotObject = errors.New("import data is not a JSON object")

// Store owns the in-memory planning document and its persistence. It is the
// only component that reads or writes the persisted blob; every mutating
// operation in the system goes through Save before returning, so there is
// never unsaved in-memory state.
//
// The store is not safe for concurrent use. The application is single-user
// and event-driven: only one interaction handler mutates the document at a
// time.
type Store struct {
	repo repository.DocumentRepo
	uow  db.UnitOfWork
	now  func() time.Time
	doc  *domain.Document
}

// New creates a Store over the given repository. The document is empty until
// Load is called.
func New(repo repository.DocumentRepo) *Store {
	return NewWithClock(repo, time.Now)
}

// NewWithClock creates a Store with an injectable clock, used by tests to
// pin timestamps and calendar days.
func NewWithClock(repo repository.DocumentRepo, now func() time.Time) *Store {
	return &Store{repo: repo, now: now}
}

// WithUnitOfWork makes Reset run its erase and rewrite inside a single
// transaction, so an interrupted reset cannot leave the storage key absent.
func (s *Store) WithUnitOfWork(uow db.UnitOfWork) *Store {
	s.uow = uow
	return s
}

// Document returns the current in-memory document. Callers mutate it in
// place and then call Save.
func (s *Store) Document() *domain.Document {
	return s.doc
}

// Now returns the store's current time. Services use it so that rollover
// checks and entity timestamps agree with persisted stamps under test clocks.
func (s *Store) Now() time.Time {
	return s.now()
}

// Load reads the persisted blob and installs the resulting document.
//
// An absent blob, an unparsable blob, or a parsed blob without a version
// field all silently fall back to a fresh default document. Otherwise the
// parsed fields are overlaid onto freshly generated defaults, with the
// per-horizon bucket merge guaranteeing that all fixed horizon buckets exist
// even if the persisted file predates a horizon being added.
func (s *Store) Load(ctx context.Context) error {
	body, err := s.repo.Read(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.doc = domain.NewDocument(s.now())
			return nil
		}
		return fmt.Errorf("loading document: %w", err)
	}

	parsed, err := parseOverlay(body)
	if err != nil || parsed.Version == nil || *parsed.Version == 0 {
		s.doc = domain.NewDocument(s.now())
		return nil
	}

	s.doc = mergeOntoDefaults(parsed, s.now())
	return nil
}

// Save stamps the document's updatedAt, serializes it, and writes it back
// under the fixed storage key. Synchronous: when Save returns, the mutation
// is durable.
func (s *Store) Save(ctx context.Context) error {
	s.doc.UpdatedAt = s.now()
	body, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}
	if err := s.repo.Write(ctx, body); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// ExportJSON serializes the full current document as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	body, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return body, nil
}

// Import parses data as a JSON object and merges it onto a fresh default
// document using the identical overlay rule as Load, then replaces the
// in-memory document wholesale and persists it. On any parse failure the
// prior document is untouched.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parsing import data: %w", err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return ErrNotObject
	}

	parsed, err := parseOverlay(data)
	if err != nil {
		return fmt.Errorf("parsing import data: %w", err)
	}

	s.doc = mergeOntoDefaults(parsed, s.now())
	return s.Save(ctx)
}

// Reset clears persisted storage entirely and reinitializes to a fresh
// default document.
func (s *Store) Reset(ctx context.Context) error {
	s.doc = domain.NewDocument(s.now())

	if s.uow == nil {
		if err := s.repo.Erase(ctx); err != nil {
			return fmt.Errorf("resetting document: %w", err)
		}
		return s.Save(ctx)
	}

	s.doc.UpdatedAt = s.now()
	body, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteDocumentRepo(tx)
		if err := txRepo.Erase(ctx); err != nil {
			return err
		}
		return txRepo.Write(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("resetting document: %w", err)
	}
	return nil
}
