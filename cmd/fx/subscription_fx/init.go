package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"subly/internal/api/controllers"
	"subly/internal/repositories"
	"subly/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepository,
	provideSubscriptionService,
	provideSubscriptionController,
)

func provideSubscriptionRepository(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	userService services.UserServiceInterface,
	paymentService services.PaymentService,
) services.SubscriptionService {
	return services.NewSubscriptionService(subscriptionRepo, productRepo, userService, paymentService)
}

func provideSubscriptionController(subscriptionService services.SubscriptionService) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
