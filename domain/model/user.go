package model

import "github.com/golang-jwt/jwt"

// ReqLogin is the login form body for the placeholder login gate.
type ReqLogin struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserClaims are the JWT claims carried by a session token.
type UserClaims struct {
	UserName string `json:"user_name"`
	jwt.StandardClaims
}
