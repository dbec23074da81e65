package service

import "context"

// SlugExistsFunc is a predicate over the persistence layer reporting whether
// a candidate slug is already taken.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// SlugService derives unique public identifiers from business display names.
type SlugService interface {
	// Generate returns a unique slug for the name, consulting exists for
	// each candidate. After the configured retries it falls back to a
	// timestamp-suffixed slug that is accepted without a further check.
	Generate(ctx context.Context, name string, exists SlugExistsFunc) (string, error)
}
