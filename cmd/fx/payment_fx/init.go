package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"subly/internal/api/controllers"
	"subly/internal/repositories"
	"subly/internal/services"
)

var Module = fx.Provide(
	providePaymentRepository,
	providePaymentService,
	providePaymentController,
)

func providePaymentRepository(db *gorm.DB) repositories.IPaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	paymentRepo repositories.IPaymentRepository,
	productRepo repositories.IProductRepository,
) services.PaymentService {
	return services.NewPaymentService(paymentRepo, productRepo)
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
