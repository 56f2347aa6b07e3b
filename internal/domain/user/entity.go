package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		FullName     string
		Email        string
		PasswordHash *string
		Role         string

		// merchant-only fields
		TinNumber   string
		NationalID  string
		BankName    string
		BankAccount string

		IsEmailVerified bool
		IsSeller        bool
		ApprovedBy      *string
		IsBanned        bool
		BannedBy        *string
		IsDeleted       bool
		TrashDate       *time.Time

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// DeletedUser is the archival snapshot written when a user is
	// permanently removed.
	DeletedUser struct {
		UUID      UUID
		FullName  string
		Email     string
		Role      string
		DeletedAt time.Time
	}
)
