package product_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"subly/internal/repositories"
)

var Module = fx.Provide(
	provideProductRepository,
)

func provideProductRepository(db *gorm.DB) repositories.IProductRepository {
	return repositories.NewProductRepository(db)
}
