// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// [Controller] holds the editor buffer and talks to the Message Store
// Service; [App] runs the terminal UI together with the background cookie
// sweeper for the lifetime of the process.
package client
