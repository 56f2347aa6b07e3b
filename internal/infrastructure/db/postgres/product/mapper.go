package product

import (
	domain "marketplace-admin-api/internal/domain/product"
)

func fromDBModel(model *Product) *domain.Product {
	return &domain.Product{
		UUID:        model.UUID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Quantity:    model.Quantity,
		Rating:      model.Rating,
		CategoryID:  model.CategoryID,
		MerchantID:  model.MerchantID,

		DeliveryType:  model.DeliveryType,
		DeliveryPrice: model.DeliveryPrice,
		Lat:           model.Lat,
		Lng:           model.Lng,

		IsDeleted: model.IsDeleted,
		TrashDate: model.TrashDate,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Products) domain.Products {
	ps := make(domain.Products, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
