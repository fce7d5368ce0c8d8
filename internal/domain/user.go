package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	RoleID int    `json:"role_id"`
}

type Claims struct {
	UserEmail  string
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
