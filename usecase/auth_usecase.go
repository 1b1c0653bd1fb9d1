package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"trending-board/domain/dto"
	"trending-board/domain/model"
	"trending-board/infrastructure/logger"
	"trending-board/infrastructure/utils"
)

// IAuthUsecase is the placeholder login gate. It compares against a single
// configured credential pair; there is no user store behind it.
type IAuthUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) dto.Res
}

type AuthUsecase struct {
	username  string
	password  string
	secretKey string
	tokenTTL  time.Duration
}

// NewAuthUsecase wires the gate with the resolved placeholder credentials.
// Empty credentials leave the gate unconfigured; Login then only returns
// guidance.
func NewAuthUsecase(username, password, secretKey string) IAuthUsecase {
	return &AuthUsecase{
		username:  username,
		password:  password,
		secretKey: secretKey,
		tokenTTL:  24 * time.Hour,
	}
}

func (u *AuthUsecase) Login(_ context.Context, req model.ReqLogin) dto.Res {
	if u.username == "" || u.password == "" {
		return dto.Res{
			ResponseCode:    "503",
			ResponseMessage: "Login credentials are not configured. Set TEMP_USERNAME and TEMP_PASSWORD via secrets or environment.",
		}
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.UserName), []byte(u.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(u.password)) == 1
	if !userOK || !passOK {
		return dto.Res{
			ResponseCode:    "401",
			ResponseMessage: "Invalid username or password",
		}
	}

	token, err := utils.GenerateToken(map[string]interface{}{
		"user_name": req.UserName,
		"iat":       utils.GetCurrentTime().Unix(),
		"exp":       utils.GetCurrentTime().Add(u.tokenTTL).Unix(),
	}, u.secretKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Token generation failed")
		return dto.Res{
			ResponseCode:    "500",
			ResponseMessage: "Could not create session token",
		}
	}

	return dto.Res{
		ResponseCode:    "200",
		ResponseMessage: "OK",
		Data:            map[string]string{"token": token},
	}
}
