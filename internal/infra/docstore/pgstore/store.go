package pgstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/psqlbuilder"
)

// documentRowID id единственной строки с документом
const documentRowID = 1

// Store документное хранилище поверх PostgreSQL: весь документ хранится
// одной jsonb-строкой в таблице tenant_documents, запись выполняется
// целиком (UPSERT), как и в файловом бэкенде.
type Store struct {
	db  DBExecutor
	log Logger
}

// New создает хранилище поверх PostgreSQL
func New(db DBExecutor, log Logger) *Store {
	return &Store{db: db, log: log}
}

// EnsureSchema создает таблицу документа, если её ещё нет
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS tenant_documents (
			id INTEGER PRIMARY KEY,
			doc JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает документ из единственной строки таблицы. Отсутствующая
// строка или битый jsonb заменяются документом по умолчанию.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	query, args, err := psqlbuilder.Select("doc").
		From("tenant_documents").
		Where(squirrel.Eq{"id": documentRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Info("Document row is missing, initializing with default document")
		return s.initDefault(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan document: %v", ErrExecQuery, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("Document row is corrupt (%v), initializing with default document", err)
		return s.initDefault(ctx)
	}

	if doc.Instances == nil {
		doc.Instances = make(map[string]*domain.Instance)
	}

	return &doc, nil
}

// Save сохраняет документ целиком одной строкой (UPSERT)
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("tenant_documents").
		Columns("id", "doc").
		Values(documentRowID, raw).
		Suffix("ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

func (s *Store) initDefault(ctx context.Context) (*domain.Document, error) {
	doc := domain.DefaultDocument()
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
