package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	User struct {
		ID           uint64
		UUID         uuid.UUID
		FullName     string
		Email        string
		PasswordHash *string
		Role         string

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

	DeletedUser struct {
		ID        uint64
		UUID      uuid.UUID
		FullName  string
		Email     string
		Role      string
		DeletedAt time.Time
	}
)
