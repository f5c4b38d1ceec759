package storemetrics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
)

// DocumentStore интерфейс документного хранилища, который оборачивается метриками
type DocumentStore interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

// Store обертка над документным хранилищем, собирающая prometheus-метрики
// по каждой операции Load/Save (аналог обертки над *sql.DB).
type Store struct {
	inner DocumentStore
	m     *metrics.Metrics
}

// Wrap оборачивает хранилище сбором метрик
func Wrap(inner DocumentStore, m *metrics.Metrics) *Store {
	return &Store{inner: inner, m: m}
}

// Load загружает документ, фиксируя длительность и результат операции
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	start := time.Now()
	doc, err := s.inner.Load(ctx)
	s.observe("load", start, err)
	return doc, err
}

// Save сохраняет документ, фиксируя длительность и результат операции
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	start := time.Now()
	err := s.inner.Save(ctx, doc)
	s.observe("save", start, err)
	return err
}

func (s *Store) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.m.StoreOpsTotal.WithLabelValues(op, result).Inc()
	s.m.StoreOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
