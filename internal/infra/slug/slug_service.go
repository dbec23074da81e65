// Package slug derives unique public identifiers from business names.
package slug

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode"

	"vitrina/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 4

	defaultMaxRetries = 5

	// fallbackBase keeps slugs well-formed when a name contains no
	// alphanumeric characters at all.
	fallbackBase = "negocio"
)

type slugService struct {
	maxRetries int
	randIntN   func(n int) int
	now        func() time.Time
}

// NewSlugService creates a slug service with the default retry budget.
func NewSlugService() service.SlugService {
	return &slugService{
		maxRetries: defaultMaxRetries,
		randIntN:   rand.IntN,
		now:        time.Now,
	}
}

// Generate derives a unique slug for name. Each candidate is
// "<base>-<rand4>"; the injected predicate is consulted per candidate and a
// fresh suffix is drawn on collision. After maxRetries collisions the slug
// falls back to "<base>-<base36 unix-millis>", accepted without a further
// check. The insert path still guards against the residual race through the
// store-level uniqueness constraint.
func (s *slugService) Generate(ctx context.Context, name string, exists service.SlugExistsFunc) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = fallbackBase
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		candidate := base + "-" + s.randomSuffix()

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug existence")
		}
		if !taken {
			return candidate, nil
		}
	}

	timestamp := strconv.FormatInt(s.now().UnixMilli(), 36)

	return base + "-" + timestamp, nil
}

func (s *slugService) randomSuffix() string {
	var suffix strings.Builder
	suffix.Grow(suffixLength)

	for range suffixLength {
		suffix.WriteByte(suffixAlphabet[s.randIntN(len(suffixAlphabet))])
	}

	return suffix.String()
}

// foldDiacritics strips combining marks so "Café" slugifies to "cafe"
// instead of dropping the accented letter.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases the name, folds diacritics, replaces every run of
// characters outside [a-z0-9] with a single hyphen, and strips
// leading/trailing hyphens.
func Slugify(name string) string {
	folded, _, err := transform.String(foldDiacritics, name)
	if err != nil {
		folded = name
	}
	lowered := strings.ToLower(strings.TrimSpace(folded))

	var out strings.Builder
	out.Grow(len(lowered))

	pendingHyphen := false
	for _, r := range lowered {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = out.Len() > 0

			continue
		}
		if pendingHyphen {
			out.WriteByte('-')
			pendingHyphen = false
		}
		out.WriteRune(r)
	}

	return out.String()
}
