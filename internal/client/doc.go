// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements a typed HTTP client for the finance advisor API.
//
// It is used by the command-line client to register, log in, manage todos
// and query the finance advisor.
package client
