package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(ctx context.Context, tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	UpdateBy(ctx context.Context, column string, value any, model any, fields map[string]any) (int64, error)
	DeleteBy(ctx context.Context, column string, value any, model any) (int64, error)
}
