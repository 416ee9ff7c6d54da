package sample

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/asherban/codiculum/sample/config"
)

// KeyLogger is the registry key of the optional *zap.Logger dependency.
const KeyLogger = "sample.logger"

// ErrRegistryPanic is returned by BuildWith when a Registry panics inside Resolve.
var ErrRegistryPanic = errors.New("sample: registry panicked during Resolve")

// Registry supplies the optional dependencies of a Program at build time.
// cfg is the configuration the Program is being built with.
type Registry interface {
	Resolve(cfg config.Config, key string) (val any, ok bool, err error)
}

// MapRegistry is the in-memory Registry used by cmd/sample.
// A nil *MapRegistry resolves nothing.
type MapRegistry struct {
	items map[string]any
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores val under key and returns the registry for chaining.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.items[key] = val
	return r
}

// ProvideLogger registers l as the Program logger.
func (r *MapRegistry) ProvideLogger(l *zap.Logger) *MapRegistry {
	return r.Provide(KeyLogger, l)
}

// Resolve implements Registry.
func (r *MapRegistry) Resolve(_ config.Config, key string) (any, bool, error) {
	if r == nil {
		return nil, false, nil
	}
	v, ok := r.items[key]
	return v, ok, nil
}

// LoggerFrom looks up KeyLogger in reg. A missing or nil entry yields (nil, nil);
// a value that is not a *zap.Logger is an error.
func LoggerFrom(reg Registry, cfg config.Config) (l *zap.Logger, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l = nil
			err = errors.Wrapf(ErrRegistryPanic, "key %s: %v", KeyLogger, rec)
		}
	}()

	raw, ok, err := reg.Resolve(cfg, KeyLogger)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", KeyLogger)
	}
	if !ok || raw == nil {
		return nil, nil
	}
	l, isLogger := raw.(*zap.Logger)
	if !isLogger {
		return nil, errors.Errorf("sample: registry key %q has type %T, want *zap.Logger", KeyLogger, raw)
	}
	return l, nil
}
