package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated caller carried by an access token.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

func (p Principal) HasAnyRole(roles ...string) bool {
	for _, have := range p.Roles {
		for _, want := range roles {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// TokenService verifies HS256 access tokens and mints them for development
// tooling.
type TokenService struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
}

func (t TokenService) CreateAccessToken(userID, email string, roles []string) (string, int64, error) {
	if userID == "" {
		return "", 0, errors.New("token subject is required")
	}
	now := time.Now().UTC()
	exp := now.Add(t.AccessTTL)
	claims := jwt.MapClaims{
		"iss":   t.Issuer,
		"sub":   userID,
		"typ":   "access",
		"email": email,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	return signed, exp.Unix(), err
}

func (t TokenService) ParseToken(tokenStr string) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithIssuer(t.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return token, claims, err
}

// Authenticate parses an access token into a Principal.
func (t TokenService) Authenticate(tokenStr string) (Principal, error) {
	token, claims, err := t.ParseToken(tokenStr)
	if err != nil || !token.Valid {
		return Principal{}, ErrUnauthorized("Authentication failed")
	}
	if claims["typ"] != "access" {
		return Principal{}, ErrUnauthorized("Authentication failed")
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return Principal{}, ErrUnauthorized("Authentication failed")
	}
	email, _ := claims["email"].(string)
	roles := []string{}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	}
	return Principal{UserID: userID, Email: email, Roles: roles}, nil
}
