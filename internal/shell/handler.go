package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"crm/internal/core"
	"crm/internal/payload"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	Register      = "register"
	Login         = "login"
	AddContact    = "add_contact"
	ViewContacts  = "view_contacts"
	UpdateContact = "update_contact"
	DeleteContact = "delete_contact"
)

type Options struct {
	Output     string
	ForcePlain bool
}

// Handler drives the interactive menu over a line oriented input.
type Handler struct {
	logs   *zap.SugaredLogger
	crm    CRMService
	in     *bufio.Reader
	render renderer
}

type operation struct {
	name  string
	table core.Table
	run   func(ctx context.Context, opID string) error
}

func NewHandler(logger *zap.SugaredLogger, crm CRMService, in io.Reader, out io.Writer, opts Options) *Handler {
	format := opts.Output
	if format == "" {
		format = OutputTable
	}

	return &Handler{
		logs: logger,
		crm:  crm,
		in:   bufio.NewReader(in),
		render: renderer{
			out:    out,
			styled: !opts.ForcePlain && isTTY(out),
			format: format,
		},
	}
}

// Run prints the menu and dispatches choices until the user exits, the input
// ends or ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	operations := map[string]operation{
		"1": {Register, core.UsersTable, h.handleRegister},
		"2": {Login, core.UsersTable, h.handleLogin},
		"3": {AddContact, core.ContactsTable, h.handleAddContact},
		"4": {ViewContacts, core.ContactsTable, h.handleViewContacts},
		"5": {UpdateContact, core.ContactsTable, h.handleUpdateContact},
		"6": {DeleteContact, core.ContactsTable, h.handleDeleteContact},
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.render.menu()
		choice, err := h.prompt(promptChoice)
		if err != nil {
			return h.endOfInput(err)
		}

		choice = strings.TrimSpace(choice)
		if choice == "7" {
			h.render.info(msgGoodbye)
			return nil
		}

		op, ok := operations[choice]
		if !ok {
			h.render.problem(msgInvalidChoice)
			continue
		}

		if err := h.dispatch(ctx, op); err != nil {
			return h.endOfInput(err)
		}
	}
}

// dispatch returns only input errors; everything else is reported and the
// menu continues.
func (h *Handler) dispatch(ctx context.Context, op operation) error {
	opID := uuid.NewString()
	h.logs.Infow("operation started", "handler", op.name, "op_id", opID)

	if err := h.crm.EnsureSchema(ctx, op.table); err != nil {
		h.report(op.name, opID, err)
		return nil
	}

	err := op.run(ctx, opID)
	if errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		h.report(op.name, opID, err)
	}
	return nil
}

func (h *Handler) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		h.logs.Infow("input closed, exiting")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

func (h *Handler) handleRegister(ctx context.Context, opID string) error {
	req, err := h.readCredentials()
	if err != nil {
		return err
	}

	if _, err := h.crm.Register(ctx, req.ToCoreCredentials()); err != nil {
		return err
	}

	h.render.info(msgRegistered)
	return nil
}

func (h *Handler) handleLogin(ctx context.Context, opID string) error {
	req, err := h.readCredentials()
	if err != nil {
		return err
	}

	userID, err := h.crm.Login(ctx, req.ToCoreCredentials())
	if err != nil {
		return err
	}

	h.render.info(fmt.Sprintf(msgLoginOK, userID))
	return nil
}

func (h *Handler) handleAddContact(ctx context.Context, opID string) error {
	userID, err := h.readID("user id", promptUserID)
	if err != nil {
		return err
	}

	name, err := h.prompt(promptName)
	if err != nil {
		return err
	}

	email, err := h.promptUntil(promptEmail, msgInvalidEmail, core.IsValidEmail)
	if err != nil {
		return err
	}

	phone, err := h.promptUntil(promptPhone, msgInvalidPhone, core.IsValidPhone)
	if err != nil {
		return err
	}

	contactID, err := h.crm.AddContact(ctx, core.ContactMessage{
		UserID: userID,
		Name:   name,
		Email:  email,
		Phone:  phone,
	})
	if err != nil {
		return err
	}

	h.logs.Infow("contact stored", "handler", AddContact, "op_id", opID, "contactId", contactID)
	h.render.info(msgContactAdded)
	return nil
}

func (h *Handler) handleViewContacts(ctx context.Context, opID string) error {
	userID, err := h.readID("user id", promptUserID)
	if err != nil {
		return err
	}

	records, err := h.crm.ViewContacts(ctx, userID)
	if err != nil {
		return err
	}

	return h.render.contacts(records)
}

func (h *Handler) handleUpdateContact(ctx context.Context, opID string) error {
	contactID, err := h.readID("contact id", promptContactID)
	if err != nil {
		return err
	}

	name, err := h.prompt(promptNewName)
	if err != nil {
		return err
	}

	email, err := h.promptUntil(promptNewEmail, msgInvalidEmail, core.IsValidEmail)
	if err != nil {
		return err
	}

	phone, err := h.promptUntil(promptNewPhone, msgInvalidPhone, core.IsValidPhone)
	if err != nil {
		return err
	}

	err = h.crm.UpdateContact(ctx, core.ContactUpdate{
		ContactID: contactID,
		Name:      name,
		Email:     email,
		Phone:     phone,
	})
	if err != nil {
		return err
	}

	h.render.info(msgContactUpdated)
	return nil
}

func (h *Handler) handleDeleteContact(ctx context.Context, opID string) error {
	contactID, err := h.readID("contact id", promptContactID)
	if err != nil {
		return err
	}

	if err := h.crm.DeleteContact(ctx, contactID); err != nil {
		return err
	}

	h.render.info(msgContactDeleted)
	return nil
}

func (h *Handler) readCredentials() (payload.AuthRequest, error) {
	username, err := h.prompt(promptUsername)
	if err != nil {
		return payload.AuthRequest{}, err
	}

	password, err := h.prompt(promptPassword)
	if err != nil {
		return payload.AuthRequest{}, err
	}

	return payload.AuthRequest{Username: username, Password: password}, nil
}

func (h *Handler) readID(field, label string) (int64, error) {
	raw, err := h.prompt(label)
	if err != nil {
		return 0, err
	}
	return payload.ParseID(field, raw)
}

// promptUntil asks again until valid accepts the answer.
func (h *Handler) promptUntil(label, retryMsg string, valid func(string) bool) (string, error) {
	for {
		answer, err := h.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		h.render.problem(retryMsg)
	}
}

// prompt writes label and returns the next line without its line ending. A
// final line without a newline is still returned.
func (h *Handler) prompt(label string) (string, error) {
	fmt.Fprint(h.render.out, label)

	line, err := h.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (h *Handler) report(handler, opID string, err error) {
	var (
		validationErr *core.ValidationError
		notFoundErr   *core.NotFoundError
		constraintErr *core.ConstraintViolation
	)

	switch {
	case errors.As(err, &validationErr):
		h.render.problem(fmt.Sprintf(msgInvalidInput, validationErr))
	case errors.As(err, &notFoundErr):
		h.render.problem(fmt.Sprintf(msgNotFound, notFoundErr.Entity, notFoundErr.ID))
	case errors.As(err, &constraintErr) && constraintErr.Constraint == core.ConstraintUniqueUsername:
		h.render.problem(msgUsernameTaken)
	case errors.As(err, &constraintErr):
		h.render.problem(fmt.Sprintf(msgConstraint, constraintErr.Constraint))
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
		h.render.problem(msgLoginFailed)
	default:
		h.render.problem(oopsErr)
	}

	h.logs.Errorw("operation failed",
		"error", err,
		"handler", handler,
		"op_id", opID)
}
