package filestore

import "errors"

var (
	// ErrRead возвращается при ошибке чтения файла хранилища
	ErrRead = errors.New("docstore.file: failed to read store file")

	// ErrWrite возвращается при ошибке записи файла хранилища
	ErrWrite = errors.New("docstore.file: failed to write store file")

	// ErrEncode возвращается при ошибке сериализации документа
	ErrEncode = errors.New("docstore.file: failed to encode document")
)
