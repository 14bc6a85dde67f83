package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"HBnB/internal/cli/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaces_Run_ListAndFilter(t *testing.T) {
	_, ts := newFakeAPI(t)
	cfg := testConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, placesCmd{}.Run(context.Background(), cfg, nil))
	})
	assert.Contains(t, out, "p1  Cabin  $80.00/night")
	assert.Contains(t, out, "p2  Loft")
	assert.Contains(t, out, "Total: 2")

	out = withStdoutCapture(t, func() {
		require.NoError(t, placesCmd{}.Run(context.Background(), cfg, []string{"100"}))
	})
	assert.NotContains(t, out, "Loft")
	assert.Contains(t, out, "Total: 1")

	out = withStdoutCapture(t, func() {
		require.NoError(t, placesCmd{}.Run(context.Background(), cfg, []string{"10"}))
	})
	assert.Contains(t, out, "No places found")

	assert.ErrorIs(t, placesCmd{}.Run(context.Background(), cfg, []string{"cheap"}), ErrUsage)
	assert.ErrorIs(t, placesCmd{}.Run(context.Background(), cfg, []string{"1", "2"}), ErrUsage)
}

func TestPlace_Run_DetailsThenReviews(t *testing.T) {
	f, ts := newFakeAPI(t)
	cfg := testConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, placeCmd{}.Run(context.Background(), cfg, []string{"p1"}))
	})
	assert.Contains(t, out, "title:       Cabin")
	assert.Contains(t, out, "host:        Ann Lee")
	assert.Contains(t, out, "amenities:   wifi")
	assert.Contains(t, out, "Bo (4/5): Cozy")

	// место не найдено → отзывы не запрашиваются
	err := placeCmd{}.Run(context.Background(), cfg, []string{"nope"})
	require.ErrorIs(t, err, api.ErrRequestFailed)
	assert.Equal(t, "Place not found", api.MessageOf(err))
	assert.Zero(t, f.callCount("GET /api/v1/reviews/places/nope/reviews"))
}

func TestReviews_Run(t *testing.T) {
	_, ts := newFakeAPI(t)
	cfg := testConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, reviewsCmd{}.Run(context.Background(), cfg, []string{"p2"}))
	})
	assert.Contains(t, out, "No reviews yet")
	assert.ErrorIs(t, reviewsCmd{}.Run(context.Background(), cfg, nil), ErrUsage)
}

func TestReviewAdd_Run(t *testing.T) {
	f, ts := newFakeAPI(t)
	cfg := testConfig(t, ts.URL)

	// без логина
	err := reviewAddCmd{}.Run(context.Background(), cfg, []string{"p1", "5", "Great"})
	require.Error(t, err)

	out := withStdoutCapture(t, func() {
		require.NoError(t, loginCmd{}.Run(context.Background(), cfg, []string{"ann@example.com", "secret"}))
		require.NoError(t, reviewAddCmd{}.Run(context.Background(), cfg, []string{"p1", "5", "Great", "stay"}))
	})
	assert.Contains(t, out, "Review submitted successfully (id r-new)")
	require.Len(t, f.posted, 1)
	assert.Equal(t, "Great stay", f.posted[0].Text)
	assert.Equal(t, "user-1", f.posted[0].UserID)
	assert.Equal(t, "p1", f.posted[0].PlaceID)

	assert.ErrorIs(t, reviewAddCmd{}.Run(context.Background(), cfg, []string{"p1", "five", "x"}), ErrUsage)
	assert.ErrorIs(t, reviewAddCmd{}.Run(context.Background(), cfg, []string{"p1", "5"}), ErrUsage)
}

func TestReviewAdd_Run_ExpiredSessionRedirectsOnce(t *testing.T) {
	f, ts := newFakeAPI(t)
	cfg := testConfig(t, ts.URL)
	withStdoutCapture(t, func() {
		require.NoError(t, loginCmd{}.Run(context.Background(), cfg, []string{"ann@example.com", "secret"}))
	})
	// сервер «отозвал» токен
	f.rotateToken(t, "user-rotated")

	var err error
	out := withStdoutCapture(t, func() {
		err = reviewAddCmd{}.Run(context.Background(), cfg, []string{"p1", "4", "Nice"})
	})
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, 1, f.callCount("POST /api/v1/reviews/"))
	assert.Equal(t, 1, strings.Count(out, "Please log in"))
	_, statErr := os.Stat(cfg.TokenFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPlaces_Run_ServerUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	cfg := testConfig(t, ts.URL)
	ts.Close()

	err := placesCmd{}.Run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, api.ErrNetwork)
}
