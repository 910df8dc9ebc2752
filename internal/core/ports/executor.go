// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor runs an interactive command with dependency binaries on its PATH.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs command in dir, inheriting stdio.
	//
	// binPaths are prepended to the PATH of the current process, first entry first.
	Execute(ctx context.Context, dir string, command []string, binPaths []string) error
}
