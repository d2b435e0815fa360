package store

import (
	"context"
	"errors"
	"time"

	"github.com/ivnagustin/lock-logger-pwa/internal/common"
	"github.com/ivnagustin/lock-logger-pwa/internal/logging"
	"github.com/ivnagustin/lock-logger-pwa/internal/model"
)

// DocumentKey is the fixed key the whole document lives under.
const DocumentKey = "document"

// DocumentStore loads and saves the single application document.
type DocumentStore struct {
	repo Repository
	log  logging.Logger
}

func NewDocumentStore(repo Repository, log logging.Logger) *DocumentStore {
	return &DocumentStore{repo: repo, log: log.With("component", "store")}
}

// Load returns the persisted document. A missing or unparsable blob silently
// yields the default document; storage failure is the only hard error.
func (s *DocumentStore) Load(ctx context.Context) (*model.Document, error) {
	data, err := s.repo.Get(ctx, DocumentKey)
	if errors.Is(err, common.ErrorNotFound) {
		return model.DefaultDocument(), nil
	}
	if err != nil {
		return nil, err
	}

	doc, err := model.DecodeDocument(data, time.Now())
	if err != nil {
		s.log.Warn(ctx, "stored document is unreadable, starting from defaults", "err", err)
		return model.DefaultDocument(), nil
	}
	return doc, nil
}

// Save rewrites the whole document. Called after every mutation.
func (s *DocumentStore) Save(ctx context.Context, doc *model.Document) error {
	data, err := model.EncodeDocument(doc)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, DocumentKey, data)
}
