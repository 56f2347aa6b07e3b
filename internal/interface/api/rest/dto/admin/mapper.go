package admin

import (
	"marketplace-admin-api/internal/domain/admin"
)

func ToResponseAdmin(aDomain admin.Admin) Admin {
	return Admin{
		UUID:     aDomain.UUID,
		FullName: aDomain.FullName,
		Email:    aDomain.Email,
		Role:     aDomain.Role,

		IsBanned:  aDomain.IsBanned,
		BannedBy:  aDomain.BannedBy,
		IsDeleted: aDomain.IsDeleted,
		TrashDate: aDomain.TrashDate,

		CreatedAt: aDomain.CreatedAt,
	}
}

func ToResponseAdmins(asDomain admin.Admins) Admins {
	as := make(Admins, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAdmin(*a)
	}

	return as
}

func ToResponseDeletedAdmin(dDomain admin.DeletedAdmin) DeletedAdmin {
	return DeletedAdmin{
		UUID:      dDomain.UUID,
		FullName:  dDomain.FullName,
		Email:     dDomain.Email,
		Role:      dDomain.Role,
		DeletedAt: dDomain.DeletedAt,
	}
}

func ToDomainAdmin(aRequest Request) admin.Admin {
	return admin.Admin{
		FullName: aRequest.FullName,
		Email:    aRequest.Email,
	}
}
