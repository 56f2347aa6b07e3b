package ports

import "context"

type Auth interface {
	// GenerateToken authenticates a staff email/password pair and returns a
	// signed session token plus the canonical role it carries.
	GenerateToken(ctx context.Context, email, password string) (token, role string, err error)
}
