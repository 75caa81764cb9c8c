// Package ports defines the interfaces kiln's core packages depend on,
// implemented by internal/adapters/*.
package ports

// Logger is the logging interface consumed by internal/build and
// internal/adapters/shell.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error, msg string, args ...any)
}
