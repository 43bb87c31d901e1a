// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dspace-utils command-line runtime.
//
// It parses subcommands and their flags, loads configuration, opens the
// optional databases, logs in to the DSpace REST API and hands the wired
// services to the selected command.
package client
