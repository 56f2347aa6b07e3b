package superadmin

import (
	"time"

	"github.com/google/uuid"
)

type (
	SuperAdmin struct {
		ID           uint64
		UUID         uuid.UUID
		FullName     string
		Email        string
		PasswordHash *string
		Role         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	SuperAdmins []*SuperAdmin
)
