package core

import "github.com/jellydator/validation"

// Table names a collection the shell ensures before dispatching.
type Table string

const (
	UsersTable    Table = "users"
	ContactsTable Table = "contacts"
)

type Credentials struct {
	Username string
	Password string
}

// ContactMessage carries the fields of a new contact.
type ContactMessage struct {
	UserID int64
	Name   string
	Email  string
	Phone  string
}

func (m ContactMessage) Validate() error {
	return validateContactFields(m.Email, m.Phone)
}

// ContactUpdate replaces name, email and phone of an existing contact.
type ContactUpdate struct {
	ContactID int64
	Name      string
	Email     string
	Phone     string
}

func (u ContactUpdate) Validate() error {
	return validateContactFields(u.Email, u.Phone)
}

// ContactRecord is the projection shown to the user when listing contacts.
type ContactRecord struct {
	UserID int64  `json:"User_ID"`
	Name   string `json:"Name"`
	Email  string `json:"Email"`
	Phone  string `json:"Phone No."`
}

var _ validation.Validatable = ContactMessage{}
var _ validation.Validatable = ContactUpdate{}
