package admin

import (
	"time"

	"github.com/google/uuid"
)

type (
	Admin struct {
		UUID     uuid.UUID `json:"uuid"`
		FullName string    `json:"full_name"`
		Email    string    `json:"email"`
		Role     string    `json:"role"`

		IsBanned  bool       `json:"is_banned"`
		BannedBy  *string    `json:"banned_by,omitempty"`
		IsDeleted bool       `json:"is_deleted"`
		TrashDate *time.Time `json:"trash_date,omitempty"`

		CreatedAt time.Time `json:"created_at"`
	}
	Admins       []Admin
	ResponseData struct {
		Data       Admins `json:"data"`
		Total      int    `json:"total"`
		TotalPages int    `json:"totalPages"`
	}

	DeletedAdmin struct {
		UUID      uuid.UUID `json:"uuid"`
		FullName  string    `json:"full_name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		DeletedAt time.Time `json:"deleted_at"`
	}
)
