package user

import (
	"marketplace-admin-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		UUID:     uDomain.UUID,
		FullName: uDomain.FullName,
		Email:    uDomain.Email,
		Role:     uDomain.Role,

		TinNumber:   uDomain.TinNumber,
		NationalID:  uDomain.NationalID,
		BankName:    uDomain.BankName,
		BankAccount: uDomain.BankAccount,

		IsEmailVerified: uDomain.IsEmailVerified,
		IsSeller:        uDomain.IsSeller,
		ApprovedBy:      uDomain.ApprovedBy,
		IsBanned:        uDomain.IsBanned,
		BannedBy:        uDomain.BannedBy,
		IsDeleted:       uDomain.IsDeleted,
		TrashDate:       uDomain.TrashDate,

		CreatedAt: uDomain.CreatedAt,
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest Request) user.User {
	u := user.User{
		FullName: uRequest.FullName,
		Email:    uRequest.Email,
		Role:     uRequest.Role,

		TinNumber:   uRequest.TinNumber,
		NationalID:  uRequest.NationalID,
		BankName:    uRequest.BankName,
		BankAccount: uRequest.BankAccount,
	}
	if uRequest.IsEmailVerified != nil {
		u.IsEmailVerified = *uRequest.IsEmailVerified
	}
	if uRequest.IsSeller != nil {
		u.IsSeller = *uRequest.IsSeller
	}

	return u
}
