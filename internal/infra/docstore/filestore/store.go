package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Store документное хранилище в одном JSON файле.
// Отсутствующий или поврежденный файл заменяется документом по умолчанию.
type Store struct {
	path string
	log  Logger
}

// New создает файловое хранилище по указанному пути
func New(path string, log Logger) *Store {
	return &Store{path: path, log: log}
}

// Load читает документ из файла. Если файл отсутствует или не парсится,
// подставляет документ по умолчанию и сразу сохраняет его.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("Store file %s does not exist, initializing with default document", s.path)
			return s.initDefault(ctx)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Поврежденный или пустой файл: инициализируем заново
		s.log.Warn("Store file %s is corrupt (%v), initializing with default document", s.path, err)
		return s.initDefault(ctx)
	}

	if doc.Instances == nil {
		doc.Instances = make(map[string]*domain.Instance)
	}

	return &doc, nil
}

// Save сериализует документ и атомарно записывает файл (temp + rename)
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWrite, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write temp file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close temp file: %v", ErrWrite, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename temp file: %v", ErrWrite, err)
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
