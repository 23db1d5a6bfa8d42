// Package credentials resolves the API key from an ordered list of sources.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var ErrCredential = errors.New("credential error")

// Source looks up a key. An empty key with a nil error means the source has
// nothing to offer and the next one should be tried.
type Source interface {
	Name() string
	Lookup(ctx context.Context) (string, error)
}

type Resolver struct {
	sources []Source
	logger  *zap.Logger
}

func NewResolver(logger *zap.Logger, sources ...Source) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{sources: sources, logger: logger}
}

// Resolve returns the key from the first source that yields one. Source
// errors abort resolution.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		names = append(names, s.Name())

		key, err := s.Lookup(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCredential, s.Name(), err)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			r.logger.Debug("credential source empty", zap.String("source", s.Name()))
			continue
		}

		r.logger.Debug("credential resolved",
			zap.String("source", s.Name()),
			zap.String("key", Mask(key)))
		return key, nil
	}
	return "", fmt.Errorf("%w: no API key found (tried %s)", ErrCredential, strings.Join(names, ", "))
}

// Mask hides all but the first and last four characters of a key.
func Mask(key string) string {
	if len(key) < 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
