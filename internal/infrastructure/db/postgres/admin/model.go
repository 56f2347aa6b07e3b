package admin

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID    uint64
	Admin struct {
		ID           uint64
		UUID         uuid.UUID
		FullName     string
		Email        string
		PasswordHash *string
		Role         string

		IsBanned  bool
		BannedBy  *string
		IsDeleted bool
		TrashDate *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Admins []*Admin

	DeletedAdmin struct {
		ID        uint64
		UUID      uuid.UUID
		FullName  string
		Email     string
		Role      string
		DeletedAt time.Time
	}
)
