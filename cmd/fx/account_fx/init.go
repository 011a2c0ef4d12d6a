package account_fx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountController)

func provideAccountService(accounts repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accounts)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
