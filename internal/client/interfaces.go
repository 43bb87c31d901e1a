// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable command-line
// applications.
type Client interface {
	// Execute runs the command named by args[0] and returns the process
	// exit code.
	Execute(ctx context.Context, args []string) int
}
