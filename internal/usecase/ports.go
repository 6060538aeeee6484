package usecase

import (
	"context"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

// Cache stores parsed manifests by version key. Overwrites are last-write-wins.
//
//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
type Cache interface {
	Has(key string) bool
	Get(key string) (core.Manifest, bool)
	Set(key string, manifest core.Manifest)
}

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
}

type Environment interface {
	Getenv(key string) string
}

type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, err error)
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, error)          {}
