package accounts_controllers

import (
	accounts_services "orilla/internal/features/accounts/services"
)

var accountController = &AccountController{
	accounts_services.GetAccountService(),
}

func GetAccountController() *AccountController {
	return accountController
}
