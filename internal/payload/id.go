package payload

import (
	"errors"
	"strconv"
	"strings"

	"crm/internal/core"

	"github.com/jellydator/validation"
)

var errNotANumber = errors.New("must be a whole number")

// ParseID reads a numeric identifier typed at a prompt. The field name ends
// up in the returned ValidationError.
func ParseID(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if err := validation.Validate(raw, validation.Required); err != nil {
		return 0, &core.ValidationError{Field: field, Err: err}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &core.ValidationError{Field: field, Err: errNotANumber}
	}

	return id, nil
}
