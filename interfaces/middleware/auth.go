package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"trending-board/domain/dto"
	"trending-board/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Auth validates the bearer token issued by the login gate. There is no user
// store behind the placeholder gate, so a valid signature is the whole check.
func Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}

		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		auth := strings.Split(authorization, "Bearer ")
		if len(auth) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		secretKey := os.Getenv("SECRET_KEY")
		userClaims, token, err := getClaim(auth[1], secretKey)
		if err != nil || !token.Valid {
			res.ResponseMessage = describe(err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set("user_name", userClaims.UserName)
		ctx.Next()
	}
}

func describe(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token:%v", err)
	}
	return "Unauthorized"
}

func getClaim(tokenString, secretKey string) (model.UserClaims, *jwt.Token, error) {
	var userClaims model.UserClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&userClaims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return userClaims, token, err
}
