// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is an authenticated DSpace REST session.
//
// DSpace hands out a JWT in the Authorization header of the login response and
// expects every following request to carry it together with the current
// CSRF token. The token is parsed without signature verification: the client
// only needs the expiry and the EPerson id, the server remains the authority.
type Session struct {
	jwt.RegisteredClaims

	// EPersonID is the "eid" claim, the UUID of the logged-in EPerson.
	EPersonID string `json:"eid"`

	// SignedString is the raw bearer token sent back to the server.
	SignedString string `json:"-"`

	// CSRFToken is the last DSPACE-XSRF-TOKEN value received from the server.
	CSRFToken string `json:"-"`
}

// Expired reports whether the session token is past its expiry at now.
// A token without an "exp" claim never expires client-side.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.SignedString == "" {
		return true
	}
	if s.ExpiresAt == nil {
		return false
	}
	return !now.Before(s.ExpiresAt.Time)
}

// String returns the bearer token.
func (s *Session) String() string {
	return s.SignedString
}
