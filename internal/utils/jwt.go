// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-animal-registry/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned by ParseBearerToken when the header carries no token.
var ErrNoToken = errors.New("no token provided")

const bearerScheme = "Bearer"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The token always carries the custom "userId" claim and the issued-at (iat)
// claim. The issuer (iss) claim is set only when issuer is non-empty and the
// expiry (exp) claim only when tokenDuration is positive, so a zero duration
// yields a token that never expires.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("animal-registry", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	now := time.Now()

	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with HS256 only (other algorithms are rejected)
//   - Issuer (iss) check, when tokenIssuer is non-empty
//   - Expiration (exp) check, when the token carries one
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// The "Bearer" scheme prefix is optional; a bare token is accepted as is and
// any other value is returned untouched for signature verification to reject.
// ErrNoToken is returned when the header carries nothing but the scheme.
func ParseBearerToken(authorizationHeader string) (string, error) {
	fields := strings.Fields(authorizationHeader)
	switch {
	case len(fields) == 0:
		return "", ErrNoToken
	case strings.EqualFold(fields[0], bearerScheme):
		if len(fields) == 1 {
			return "", ErrNoToken
		}
		return strings.Join(fields[1:], " "), nil
	default:
		return strings.TrimSpace(authorizationHeader), nil
	}
}
