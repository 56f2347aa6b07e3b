package admin

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID    uint64
	UUID  = uuid.UUID
	Admin struct {
		UUID         UUID
		FullName     string
		Email        string
		PasswordHash *string
		// Role is stored free-text; records created through this service
		// always hold "admin" but legacy rows vary in casing.
		Role string

		IsBanned  bool
		BannedBy  *string
		IsDeleted bool
		TrashDate *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Admins []*Admin

	DeletedAdmin struct {
		UUID      UUID
		FullName  string
		Email     string
		Role      string
		DeletedAt time.Time
	}
)
