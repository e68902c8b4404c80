package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"subly/internal/models/db_models"
)

type IProductRepository interface {
	FindByID(ctx context.Context, productID string) (*db_models.Product, error)
	GetAllProducts(ctx context.Context) ([]db_models.Product, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (p ProductRepository) FindByID(ctx context.Context, productID string) (*db_models.Product, error) {

	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", productID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (p ProductRepository) GetAllProducts(ctx context.Context) ([]db_models.Product, error) {

	var products []db_models.Product
	err := p.db.WithContext(ctx).Where("is_active = TRUE").Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
