package shell

import (
	"context"

	"crm/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CRMService . CRMService
type CRMService interface {
	EnsureSchema(ctx context.Context, table core.Table) error
	Register(ctx context.Context, creds core.Credentials) (int64, error)
	Login(ctx context.Context, creds core.Credentials) (int64, error)
	AddContact(ctx context.Context, msg core.ContactMessage) (int64, error)
	ViewContacts(ctx context.Context, userID int64) ([]core.ContactRecord, error)
	UpdateContact(ctx context.Context, upd core.ContactUpdate) error
	DeleteContact(ctx context.Context, contactID int64) error
}
