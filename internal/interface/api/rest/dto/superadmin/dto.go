package superadmin

import (
	"time"

	"github.com/google/uuid"

	"marketplace-admin-api/internal/domain/superadmin"
)

type Request struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type (
	SuperAdmin struct {
		UUID      uuid.UUID `json:"uuid"`
		FullName  string    `json:"full_name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}
	SuperAdmins  []SuperAdmin
	ResponseData struct {
		Data       SuperAdmins `json:"data"`
		Total      int         `json:"total"`
		TotalPages int         `json:"totalPages"`
	}
)

func ToResponseSuperAdmin(sDomain superadmin.SuperAdmin) SuperAdmin {
	return SuperAdmin{
		UUID:      sDomain.UUID,
		FullName:  sDomain.FullName,
		Email:     sDomain.Email,
		Role:      sDomain.Role,
		CreatedAt: sDomain.CreatedAt,
	}
}

func ToResponseSuperAdmins(ssDomain superadmin.SuperAdmins) SuperAdmins {
	ss := make(SuperAdmins, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseSuperAdmin(*s)
	}

	return ss
}

func ToDomainSuperAdmin(sRequest Request) superadmin.SuperAdmin {
	return superadmin.SuperAdmin{
		FullName: sRequest.FullName,
		Email:    sRequest.Email,
	}
}
