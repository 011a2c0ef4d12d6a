package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

func (ctrl *AccountController) CreateAccountHandler(c *gin.Context) {
	var req request_models.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := ctrl.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (ctrl *AccountController) GetAccountHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, err := ctrl.accountService.GetAccountByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
