package admin

import (
	domain "marketplace-admin-api/internal/domain/admin"
)

func fromDBModel(model *Admin) *domain.Admin {
	return &domain.Admin{
		UUID:         model.UUID,
		FullName:     model.FullName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,

		IsBanned:  model.IsBanned,
		BannedBy:  model.BannedBy,
		IsDeleted: model.IsDeleted,
		TrashDate: model.TrashDate,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Admins) domain.Admins {
	as := make(domain.Admins, len(*models))
	for idx, a := range *models {
		as[idx] = fromDBModel(a)
	}

	return as
}

func fromDeletedDBModel(model *DeletedAdmin) *domain.DeletedAdmin {
	return &domain.DeletedAdmin{
		UUID:      model.UUID,
		FullName:  model.FullName,
		Email:     model.Email,
		Role:      model.Role,
		DeletedAt: model.DeletedAt,
	}
}
