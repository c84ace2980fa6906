// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable client application. Run blocks until the process is
// signalled to stop and returns the startup error, if any.
type Client interface {
	Run() error
}
