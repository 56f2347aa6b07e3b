package category

import (
	"time"

	"github.com/google/uuid"

	"marketplace-admin-api/internal/domain/category"
)

type Request struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type (
	Category struct {
		UUID        uuid.UUID `json:"uuid"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"created_at"`
	}
	Categories   []Category
	ResponseData struct {
		Data Categories `json:"data"`
	}
)

func ToResponseCategory(cDomain category.Category) Category {
	return Category{
		UUID:        cDomain.UUID,
		Name:        cDomain.Name,
		Description: cDomain.Description,
		CreatedAt:   cDomain.CreatedAt,
	}
}

func ToResponseCategories(csDomain category.Categories) Categories {
	cs := make(Categories, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseCategory(*c)
	}

	return cs
}

func ToDomainCategory(cRequest Request) category.Category {
	return category.Category{
		Name:        cRequest.Name,
		Description: cRequest.Description,
	}
}
