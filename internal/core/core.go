package core

import (
	"context"
	"errors"
	"fmt"

	"crm/internal/repository"
	"crm/pkg/password"

	"go.uber.org/zap"
)

// CRM registers users, checks their credentials and manages their contacts.
type CRM struct {
	logs   *zap.SugaredLogger
	repo   Repository
	hasher PasswordHasher
}

func NewCRM(logger *zap.SugaredLogger, repo Repository, hasher PasswordHasher) *CRM {
	return &CRM{
		logs:   logger,
		repo:   repo,
		hasher: hasher,
	}
}

// EnsureSchema creates the given table if it does not exist yet.
func (c *CRM) EnsureSchema(ctx context.Context, table Table) error {
	var err error
	switch table {
	case UsersTable:
		err = c.repo.EnsureUserTable(ctx)
	case ContactsTable:
		err = c.repo.EnsureContactTable(ctx)
	default:
		return fmt.Errorf("unknown table %q", table)
	}

	if err != nil {
		return &StorageError{Op: "ensure " + string(table), Err: err}
	}
	return nil
}

// Register stores a new user with a digest of the password and returns its id.
func (c *CRM) Register(ctx context.Context, creds Credentials) (int64, error) {
	digest, err := c.hasher.Hash(creds.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return 0, &ValidationError{Field: "password", Err: err}
		}
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user, err := c.repo.CreateUser(ctx, creds.Username, digest)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return 0, &ConstraintViolation{Constraint: ConstraintUniqueUsername, Err: err}
		}
		return 0, &StorageError{Op: "create user", Err: err}
	}

	c.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return user.ID, nil
}

// Login compares the password against the stored digest. Nothing is kept
// between calls; the user id is returned so the caller can show it.
func (c *CRM) Login(ctx context.Context, creds Credentials) (int64, error) {
	user, err := c.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, &StorageError{Op: "get user", Err: err}
	}

	if err = c.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			c.logs.Errorw("compare password digest", "error", err, "userId", user.ID)
		}
		return 0, ErrIncorrectPassword
	}

	return user.ID, nil
}

func (c *CRM) AddContact(ctx context.Context, msg ContactMessage) (int64, error) {
	if err := msg.Validate(); err != nil {
		return 0, err
	}

	contact, err := c.repo.CreateContact(ctx, repository.Contact{
		UserID: msg.UserID,
		Name:   msg.Name,
		Email:  msg.Email,
		Phone:  msg.Phone,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUnknownUser) {
			return 0, &ConstraintViolation{Constraint: ConstraintContactOwner, Err: err}
		}
		return 0, &StorageError{Op: "create contact", Err: err}
	}

	c.logs.Infow("contact added", "contactId", contact.ID, "userId", contact.UserID)
	return contact.ID, nil
}

// ViewContacts lists the contacts of a user ordered by contact id. A user
// with no contacts gets an empty slice.
func (c *CRM) ViewContacts(ctx context.Context, userID int64) ([]ContactRecord, error) {
	contacts, err := c.repo.GetContactsByUser(ctx, userID)
	if err != nil {
		return nil, &StorageError{Op: "list contacts", Err: err}
	}

	records := make([]ContactRecord, len(contacts))
	for i, contact := range contacts {
		records[i] = ContactRecord{
			UserID: contact.UserID,
			Name:   contact.Name,
			Email:  contact.Email,
			Phone:  contact.Phone,
		}
	}

	c.logs.Infow("contacts listed", "userId", userID, "count", len(records))
	return records, nil
}

func (c *CRM) UpdateContact(ctx context.Context, upd ContactUpdate) error {
	if err := upd.Validate(); err != nil {
		return err
	}

	err := c.repo.UpdateContact(ctx, repository.Contact{
		ID:    upd.ContactID,
		Name:  upd.Name,
		Email: upd.Email,
		Phone: upd.Phone,
	})
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return &NotFoundError{Entity: "contact", ID: upd.ContactID}
		}
		return &StorageError{Op: "update contact", Err: err}
	}

	c.logs.Infow("contact updated", "contactId", upd.ContactID)
	return nil
}

func (c *CRM) DeleteContact(ctx context.Context, contactID int64) error {
	err := c.repo.DeleteContact(ctx, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return &NotFoundError{Entity: "contact", ID: contactID}
		}
		return &StorageError{Op: "delete contact", Err: err}
	}

	c.logs.Infow("contact deleted", "contactId", contactID)
	return nil
}
