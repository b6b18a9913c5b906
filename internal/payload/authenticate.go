package payload

import "crm/internal/core"

// AuthRequest holds the credentials typed at the prompts. Any value,
// including an empty one, is passed through as typed.
type AuthRequest struct {
	Username string
	Password string
}

func (a AuthRequest) ToCoreCredentials() core.Credentials {
	return core.Credentials{
		Username: a.Username,
		Password: a.Password,
	}
}
