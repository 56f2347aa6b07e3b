package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID     uuid.UUID `json:"uuid"`
		FullName string    `json:"full_name"`
		Email    string    `json:"email"`
		Role     string    `json:"role"`

		TinNumber   string `json:"tin_number,omitempty"`
		NationalID  string `json:"national_id,omitempty"`
		BankName    string `json:"bank_name,omitempty"`
		BankAccount string `json:"bank_account,omitempty"`

		IsEmailVerified bool       `json:"is_email_verified"`
		IsSeller        bool       `json:"is_seller"`
		ApprovedBy      *string    `json:"approved_by,omitempty"`
		IsBanned        bool       `json:"is_banned"`
		BannedBy        *string    `json:"banned_by,omitempty"`
		IsDeleted       bool       `json:"is_deleted"`
		TrashDate       *time.Time `json:"trash_date,omitempty"`

		CreatedAt time.Time `json:"created_at"`
	}
	Users        []User
	ResponseData struct {
		Data       Users `json:"data"`
		Total      int   `json:"total"`
		TotalPages int   `json:"totalPages"`
	}
)
