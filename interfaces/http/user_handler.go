package http

import (
	"fmt"
	"net/http"
	"strconv"

	"trending-board/domain/model"
	"trending-board/infrastructure/logger"
	"trending-board/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

type IUserHandler interface {
	Login(c *gin.Context)
}

type UserHandler struct {
	authUsecase usecase.IAuthUsecase
}

func NewUserHandler(authUsecase usecase.IAuthUsecase) IUserHandler {
	return &UserHandler{authUsecase: authUsecase}
}

func (userHandler *UserHandler) Login(c *gin.Context) {
	var req model.ReqLogin

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}

	res := userHandler.authUsecase.Login(c.Request.Context(), req)

	status := http.StatusOK
	if code, err := strconv.Atoi(res.ResponseCode); err == nil {
		status = code
	}
	c.JSON(status, res)
}
