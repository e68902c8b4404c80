package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"subly/internal/api/controllers"
	"subly/internal/repositories"
	"subly/internal/services"
)

var Module = fx.Provide(
	provideUserRepository,
	provideUserService,
	provideUserController,
)

func provideUserRepository(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(
	userRepo repositories.UserRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, subscriptionRepo)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
