package product

import (
	"time"

	"github.com/google/uuid"

	"marketplace-admin-api/internal/domain/product"
)

type Request struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Rating      float64 `json:"rating"`
	CategoryID  string  `json:"category_id,omitempty"`
	MerchantID  string  `json:"merchant_id,omitempty"`

	DeliveryType  string  `json:"delivery_type"`
	DeliveryPrice float64 `json:"delivery_price"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

type (
	Product struct {
		UUID        uuid.UUID  `json:"uuid"`
		Name        string     `json:"name"`
		Description string     `json:"description"`
		Price       float64    `json:"price"`
		Quantity    int        `json:"quantity"`
		Rating      float64    `json:"rating"`
		CategoryID  *uuid.UUID `json:"category_id,omitempty"`
		MerchantID  *uuid.UUID `json:"merchant_id,omitempty"`

		DeliveryType  string  `json:"delivery_type"`
		DeliveryPrice float64 `json:"delivery_price"`
		Lat           float64 `json:"lat"`
		Lng           float64 `json:"lng"`

		IsDeleted bool       `json:"is_deleted"`
		TrashDate *time.Time `json:"trash_date,omitempty"`

		CreatedAt time.Time `json:"created_at"`
	}
	Products     []Product
	ResponseData struct {
		Data       Products `json:"data"`
		Total      int      `json:"total"`
		TotalPages int      `json:"totalPages"`
	}
)

func ToResponseProduct(pDomain product.Product) Product {
	return Product{
		UUID:        pDomain.UUID,
		Name:        pDomain.Name,
		Description: pDomain.Description,
		Price:       pDomain.Price,
		Quantity:    pDomain.Quantity,
		Rating:      pDomain.Rating,
		CategoryID:  pDomain.CategoryID,
		MerchantID:  pDomain.MerchantID,

		DeliveryType:  pDomain.DeliveryType,
		DeliveryPrice: pDomain.DeliveryPrice,
		Lat:           pDomain.Lat,
		Lng:           pDomain.Lng,

		IsDeleted: pDomain.IsDeleted,
		TrashDate: pDomain.TrashDate,

		CreatedAt: pDomain.CreatedAt,
	}
}

func ToResponseProducts(psDomain product.Products) Products {
	ps := make(Products, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponseProduct(*p)
	}

	return ps
}

func ToDomainProduct(pRequest Request) (product.Product, error) {
	p := product.Product{
		Name:        pRequest.Name,
		Description: pRequest.Description,
		Price:       pRequest.Price,
		Quantity:    pRequest.Quantity,
		Rating:      pRequest.Rating,

		DeliveryType:  pRequest.DeliveryType,
		DeliveryPrice: pRequest.DeliveryPrice,
		Lat:           pRequest.Lat,
		Lng:           pRequest.Lng,
	}
	if pRequest.CategoryID != "" {
		id, err := uuid.Parse(pRequest.CategoryID)
		if err != nil {
			return product.Product{}, err
		}
		p.CategoryID = &id
	}
	if pRequest.MerchantID != "" {
		id, err := uuid.Parse(pRequest.MerchantID)
		if err != nil {
			return product.Product{}, err
		}
		p.MerchantID = &id
	}

	return p, nil
}
