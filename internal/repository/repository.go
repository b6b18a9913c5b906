package repository

import (
	"context"
	"errors"
	"fmt"

	"crm/internal/db"
)

var (
	ErrUserNotFound    error = errors.New("user not found")
	ErrUsernameTaken   error = errors.New("username already exists")
	ErrContactNotFound error = errors.New("contact not found")
	ErrUnknownUser     error = errors.New("contact refers to an unknown user")
)

type CRMRepository struct {
	db Storage
}

func NewCRMRepository(db Storage) *CRMRepository {
	return &CRMRepository{
		db: db,
	}
}

func (r *CRMRepository) EnsureUserTable(ctx context.Context) error {
	if err := r.db.MigrateTable(ctx, &User{}); err != nil {
		return fmt.Errorf("ensure users table: %w", err)
	}
	return nil
}

func (r *CRMRepository) EnsureContactTable(ctx context.Context) error {
	if err := r.db.MigrateTable(ctx, &Contact{}); err != nil {
		return fmt.Errorf("ensure contacts table: %w", err)
	}
	return nil
}

func (r *CRMRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.SaveToTable(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrConstraint) {
			return User{}, fmt.Errorf("create user %q: %w", username, ErrUsernameTaken)
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *CRMRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *CRMRepository) CreateContact(ctx context.Context, contact Contact) (Contact, error) {
	err := r.db.SaveToTable(ctx, &contact)
	if err != nil {
		if errors.Is(err, db.ErrConstraint) {
			return Contact{}, fmt.Errorf("create contact for user %d: %w", contact.UserID, ErrUnknownUser)
		}
		return Contact{}, fmt.Errorf("create contact: %w", err)
	}

	return contact, nil
}

func (r *CRMRepository) GetContactsByUser(ctx context.Context, userID int64) ([]Contact, error) {
	contacts := []Contact{}

	err := r.db.GetAllBy(ctx, "user_id", userID, &contacts)
	if err != nil {
		return nil, fmt.Errorf("get contacts by user: %w", err)
	}

	return contacts, nil
}

// UpdateContact overwrites name, email and phone of the contact with
// contact.ID.
func (r *CRMRepository) UpdateContact(ctx context.Context, contact Contact) error {
	rows, err := r.db.UpdateBy(ctx, "id", contact.ID, &Contact{}, map[string]any{
		"name":  contact.Name,
		"email": contact.Email,
		"phone": contact.Phone,
	})
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	if rows == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *CRMRepository) DeleteContact(ctx context.Context, contactID int64) error {
	rows, err := r.db.DeleteBy(ctx, "id", contactID, &Contact{})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	if rows == 0 {
		return ErrContactNotFound
	}

	return nil
}
