package instances

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения документа из хранилища
	ErrLoad = errors.New("instances.manager: failed to load document")

	// ErrSave возвращается при ошибке сохранения документа в хранилище
	ErrSave = errors.New("instances.manager: failed to save document")
)
