package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coh-music/backend/internal/db"
	"github.com/coh-music/backend/internal/http/api"
	"github.com/coh-music/backend/internal/http/api/public/packets"
	"github.com/coh-music/backend/internal/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newPublicServer(t *testing.T) (*gin.Engine, *db.MemStore) {
	t.Helper()
	store := db.NewMemStore()
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/public"}, SiteModule(store))
	return r, store
}

func doGet(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r http.Handler, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedRelease(t *testing.T, store *db.MemStore, title, slug string, releaseAt *time.Time, comingSoon bool) {
	t.Helper()
	var releaseDate *time.Time
	if releaseAt != nil {
		d := time.Date(releaseAt.Year(), releaseAt.Month(), releaseAt.Day(), 0, 0, 0, 0, time.UTC)
		releaseDate = &d
	}
	_, err := store.CreateRelease(db.CreateReleaseParams{
		Title: title,
		Slug:  slug,
		Timing: db.ReleaseTimingParams{
			ReleaseDate: releaseDate,
			ReleaseAt:   releaseAt,
			ComingSoon:  comingSoon,
		},
		CreatedBy: 1,
	})
	require.NoError(t, err)
}

func TestPublicReleasesComputeComingSoon(t *testing.T) {
	r, store := newPublicServer(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)

	// stored flag still true, but the instant has passed
	seedRelease(t, store, "Already Out", "already-out", &past, true)
	// genuinely upcoming
	seedRelease(t, store, "Next Single", "next-single", &future, true)
	// explicit false sticks regardless of schedule
	seedRelease(t, store, "Quiet Drop", "quiet-drop", &future, false)
	// no schedule at all
	seedRelease(t, store, "Someday", "someday", nil, true)

	w := doGet(r, "/api/public/releases", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var listed []packets.ReleaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 4)

	bySlug := map[string]packets.ReleaseResponse{}
	for _, rr := range listed {
		bySlug[rr.Slug] = rr
	}
	assert.False(t, bySlug["already-out"].ComingSoon, "past release_at flips the badge off")
	assert.True(t, bySlug["next-single"].ComingSoon)
	assert.False(t, bySlug["quiet-drop"].ComingSoon, "explicit false wins over a future date")
	assert.True(t, bySlug["someday"].ComingSoon, "unscheduled stays coming soon")
}

func TestPublicReleaseBySlug(t *testing.T) {
	r, store := newPublicServer(t)
	seedRelease(t, store, "Next Single", "next-single", nil, true)

	w := doGet(r, "/api/public/releases/next-single", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.ReleaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Next Single", resp.Title)

	w = doGet(r, "/api/public/releases/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicGalleryETag(t *testing.T) {
	r, store := newPublicServer(t)

	title := "Live"
	_, err := store.CreateGalleryItem(&title, "/uploads/live.jpg", nil, 1)
	require.NoError(t, err)

	first := doGet(r, "/api/public/gallery", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := doGet(r, "/api/public/gallery", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
}

// The coming-soon flip happens with no admin write, so a cached ETag
// must never answer a conditional request once a release instant has
// passed: the conditional GET after the instant gets the fresh payload,
// not 304.
func TestReleasesETagTracksComingSoonFlip(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.InitRedis(mr.Addr(), "", "")
	t.Cleanup(func() { redis.Rdb = nil })

	r, store := newPublicServer(t)

	at := time.Now().Add(150 * time.Millisecond)
	seedRelease(t, store, "Imminent Drop", "imminent-drop", &at, true)

	first := doGet(r, "/api/public/releases", nil)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	var listed []packets.ReleaseResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.True(t, listed[0].ComingSoon)

	time.Sleep(300 * time.Millisecond)

	second := doGet(r, "/api/public/releases", map[string]string{"If-None-Match": etag})
	require.Equal(t, http.StatusOK, second.Code, "payload changed, conditional GET must not 304")
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.False(t, listed[0].ComingSoon)
	assert.NotEqual(t, etag, second.Header().Get("ETag"))
}

// Identical payloads still produce 304s with the cache live.
func TestGalleryETagNotModifiedWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.InitRedis(mr.Addr(), "", "")
	t.Cleanup(func() { redis.Rdb = nil })

	r, store := newPublicServer(t)
	title := "Live"
	_, err := store.CreateGalleryItem(&title, "/uploads/live.jpg", nil, 1)
	require.NoError(t, err)

	first := doGet(r, "/api/public/gallery", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := doGet(r, "/api/public/gallery", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, second.Code)
}

func TestPublicPress(t *testing.T) {
	r, store := newPublicServer(t)

	_, err := store.CreatePressKitLink("Photos", "https://cdn.example.com/photos.zip")
	require.NoError(t, err)
	_, err = store.CreatePressRelease(db.CreatePressReleaseParams{
		Title: "Tour dates", Body: "...", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), CreatedBy: 1,
	})
	require.NoError(t, err)

	w := doGet(r, "/api/public/press", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp packets.PressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.KitLinks, 1)
	require.Len(t, resp.Releases, 1)
	assert.Equal(t, "2026-03-02", resp.Releases[0].Date)
}

func TestPublicPageUnknownSlug(t *testing.T) {
	r, store := newPublicServer(t)

	_, err := store.UpsertPage("about", "About Coh", "Bio text", nil)
	require.NoError(t, err)

	w := doGet(r, "/api/public/pages/about", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "/api/public/pages/admin-secrets", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribeIdempotent(t *testing.T) {
	r, store := newPublicServer(t)

	w := doPost(r, "/api/public/subscribe", `{"email":"fan@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// same address again still reports success
	w = doPost(r, "/api/public/subscribe", `{"email":"fan@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	subs, err := store.ListSubscribers()
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	r, _ := newPublicServer(t)

	w := doPost(r, "/api/public/subscribe", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnsubscribe(t *testing.T) {
	r, store := newPublicServer(t)

	_, err := store.CreateSubscriber("fan@example.com", "tok-abc")
	require.NoError(t, err)

	w := doGet(r, "/api/public/unsubscribe/tok-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	subs, err := store.ListSubscribers()
	require.NoError(t, err)
	assert.Empty(t, subs)

	w = doGet(r, "/api/public/unsubscribe/tok-abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
