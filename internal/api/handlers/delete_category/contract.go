package delete_category

import "context"

type CatalogService interface {
	DeleteCategory(ctx context.Context, instanceID, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
