// Package recordfile serves records from a single JSON document of the form
// {"products":[...],"sales":[...],"costs":[...]}.
package recordfile

import (
	"context"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Document struct {
	Products []domain.Product    `json:"products"`
	Sales    []domain.Sale       `json:"sales"`
	Costs    []domain.CostRecord `json:"costs"`
}

// Store re-reads the file only when its modification time or size changes.
type Store struct {
	path string

	mu      sync.Mutex
	doc     *Document
	modTime time.Time
	size    int64
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return append([]domain.Product{}, doc.Products...), nil
}

func (s *Store) ListSales(ctx context.Context) ([]domain.Sale, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return append([]domain.Sale{}, doc.Sales...), nil
}

func (s *Store) ListCosts(ctx context.Context) ([]domain.CostRecord, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return append([]domain.CostRecord{}, doc.Costs...), nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := os.Stat(s.path); err != nil {
		return errors.Wrap(err, "record file unavailable")
	}

	return nil
}

func (s *Store) load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "stat record file")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc != nil && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return s.doc, nil
	}

	doc, err := ReadDocument(s.path)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":     s.path,
		"products": len(doc.Products),
		"sales":    len(doc.Sales),
		"costs":    len(doc.Costs),
	}).Debug("recordfile: document loaded")

	s.doc = doc
	s.modTime = info.ModTime()
	s.size = info.Size()

	return doc, nil
}

// ReadDocument decodes the whole record document at path.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read record file")
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrapf(err, "decode record file %s", path)
	}

	return doc, nil
}
