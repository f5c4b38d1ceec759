package pgstore

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("docstore.postgres: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("docstore.postgres: failed to execute query")

	// ErrEncode возвращается при ошибке сериализации документа
	ErrEncode = errors.New("docstore.postgres: failed to encode document")
)
