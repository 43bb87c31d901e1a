package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/dspace-utils/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned when a header is not of the form
// "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseSessionToken decodes the claims of a DSpace session token without
// verifying its signature.
//
// The signing key lives on the server; the client only reads "exp" and "eid"
// to decide when to log in again.
//
// Example usage:
//
//	session, err := utils.ParseSessionToken(rawToken)
//	if err != nil {
//	    // the server returned something that is not a JWT
//	}
func ParseSessionToken(tokenString string) (models.Session, error) {
	session := models.Session{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &session); err != nil {
		return models.Session{}, fmt.Errorf("error parsing session token: %w", err)
	}
	session.SignedString = tokenString

	return session, nil
}
