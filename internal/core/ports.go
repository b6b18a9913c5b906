package core

import (
	"context"

	"crm/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	EnsureUserTable(ctx context.Context) error
	EnsureContactTable(ctx context.Context) error
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateContact(ctx context.Context, contact repository.Contact) (repository.Contact, error)
	GetContactsByUser(ctx context.Context, userID int64) ([]repository.Contact, error)
	UpdateContact(ctx context.Context, contact repository.Contact) error
	DeleteContact(ctx context.Context, contactID int64) error
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(digest, plain string) error
}
