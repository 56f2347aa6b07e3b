package user

import (
	domain "marketplace-admin-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		UUID:         model.UUID,
		FullName:     model.FullName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,

		TinNumber:   model.TinNumber,
		NationalID:  model.NationalID,
		BankName:    model.BankName,
		BankAccount: model.BankAccount,

		IsEmailVerified: model.IsEmailVerified,
		IsSeller:        model.IsSeller,
		ApprovedBy:      model.ApprovedBy,
		IsBanned:        model.IsBanned,
		BannedBy:        model.BannedBy,
		IsDeleted:       model.IsDeleted,
		TrashDate:       model.TrashDate,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

func fromDeletedDBModel(model *DeletedUser) *domain.DeletedUser {
	return &domain.DeletedUser{
		UUID:      model.UUID,
		FullName:  model.FullName,
		Email:     model.Email,
		Role:      model.Role,
		DeletedAt: model.DeletedAt,
	}
}
