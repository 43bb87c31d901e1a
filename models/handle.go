// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHandle is returned by [ParseHandle] when the input is not of the
// form prefix/suffix.
var ErrInvalidHandle = errors.New("invalid handle")

// handlePIDPrefix is the scheme DSpace expects in front of a handle when it is
// passed to the /pid/find endpoint.
const handlePIDPrefix = "hdl:"

// Handle is a persistent identifier of the form prefix/suffix (e.g. "1/1825")
// that resolves to exactly one repository object.
type Handle string

// ParseHandle validates s and returns it as a [Handle]. Surrounding whitespace
// and an optional "hdl:" scheme are stripped. Both prefix and suffix must be
// non-empty and the suffix may not contain further slashes.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), handlePIDPrefix)

	prefix, suffix, found := strings.Cut(s, "/")
	if !found || prefix == "" || suffix == "" || strings.Contains(suffix, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandle, s)
	}
	if strings.ContainsAny(s, " \t\n?#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandle, s)
	}

	return Handle(s), nil
}

// String returns the bare prefix/suffix form.
func (h Handle) String() string {
	return string(h)
}

// PID returns the handle in the "hdl:prefix/suffix" form used by /pid/find.
func (h Handle) PID() string {
	return handlePIDPrefix + string(h)
}
