package slug

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*-[a-z0-9]{4}$`)

func neverTaken(context.Context, string) (bool, error) { return false, nil }

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Tacos El Sol", want: "tacos-el-sol"},
		{name: "folds diacritics and strips punctuation", input: "Café Rico!!", want: "cafe-rico"},
		{name: "collapses symbol runs", input: "a  --  b", want: "a-b"},
		{name: "strips edge hyphens", input: "  ¡Hola!  ", want: "hola"},
		{name: "keeps digits", input: "Barbería 24/7", want: "barberia-24-7"},
		{name: "empty when no alphanumerics", input: "¡¡¡···!!!", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}

func TestGenerate_MatchesSlugShape(t *testing.T) {
	t.Parallel()

	svc := NewSlugService()

	for _, name := range []string{"Tacos El Sol", "Café Rico!!", "Barbería 24/7", "A"} {
		got, err := svc.Generate(context.Background(), name, neverTaken)
		require.NoError(t, err)
		assert.Regexp(t, slugPattern, got)
	}
}

func TestGenerate_FallsBackWhenNameHasNoAlphanumerics(t *testing.T) {
	t.Parallel()

	svc := NewSlugService()

	got, err := svc.Generate(context.Background(), "¡¡¡!!!", neverTaken)
	require.NoError(t, err)
	assert.Regexp(t, slugPattern, got)
	assert.Contains(t, got, "negocio-")
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	svc := &slugService{
		maxRetries: defaultMaxRetries,
		randIntN:   func(int) int { return 0 },
		now:        time.Now,
	}

	calls := 0
	exists := func(context.Context, string) (bool, error) {
		calls++

		return calls == 1, nil
	}

	got, err := svc.Generate(context.Background(), "Tacos El Sol", exists)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "tacos-el-sol-aaaa", got)
}

func TestGenerate_TimestampFallbackAfterRetriesExhausted(t *testing.T) {
	t.Parallel()

	fixed := time.UnixMilli(1700000000000)
	svc := &slugService{
		maxRetries: 3,
		randIntN:   func(int) int { return 0 },
		now:        func() time.Time { return fixed },
	}

	calls := 0
	alwaysTaken := func(context.Context, string) (bool, error) {
		calls++

		return true, nil
	}

	got, err := svc.Generate(context.Background(), "Tacos El Sol", alwaysTaken)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "tacos-el-sol-loyw3v28", got)
}

func TestGenerate_PropagatesLookupError(t *testing.T) {
	t.Parallel()

	svc := NewSlugService()

	failing := func(context.Context, string) (bool, error) {
		return false, errors.New("connection refused")
	}

	_, err := svc.Generate(context.Background(), "Tacos El Sol", failing)
	assert.ErrorContains(t, err, "failed to check slug existence")
}
