package endpoints

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coh-music/backend/internal/http/api/admin/packets"
)

func createRelease(t *testing.T, r http.Handler, token, body string) packets.ReleaseResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/admin/releases", body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp packets.ReleaseResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestCreateReleaseFutureDateDefaultsComingSoon(t *testing.T) {
	r, _, token := newTestServer(t)

	resp := createRelease(t, r, token,
		`{"title":"Midnight Run","release_date":"2099-05-01"}`)

	assert.Equal(t, "midnight-run", resp.Slug)
	require.NotNil(t, resp.ReleaseDate)
	assert.Equal(t, "2099-05-01", *resp.ReleaseDate)
	require.NotNil(t, resp.ReleaseAt)
	assert.Equal(t, "2099-05-01T00:00:00Z", *resp.ReleaseAt)
	assert.True(t, resp.ComingSoon)
	assert.Equal(t, 0, resp.SortOrder)
}

func TestCreateReleasePastDateNotComingSoon(t *testing.T) {
	r, _, token := newTestServer(t)

	resp := createRelease(t, r, token,
		`{"title":"Back Catalog","release_date":"2001-01-01"}`)

	assert.False(t, resp.ComingSoon)
}

func TestCreateReleaseExplicitOverrideStored(t *testing.T) {
	r, _, token := newTestServer(t)

	// override beats the date-derived default in the stored record
	resp := createRelease(t, r, token,
		`{"title":"Early Leak","release_date":"2099-05-01","coming_soon":false}`)
	assert.False(t, resp.ComingSoon)

	resp = createRelease(t, r, token,
		`{"title":"No Date Yet","coming_soon":false}`)
	assert.False(t, resp.ComingSoon)
	assert.Nil(t, resp.ReleaseDate)
	assert.Nil(t, resp.ReleaseAt)
}

func TestCreateReleaseNoDateDefaultsComingSoon(t *testing.T) {
	r, _, token := newTestServer(t)

	resp := createRelease(t, r, token, `{"title":"Untitled"}`)
	assert.True(t, resp.ComingSoon)
	assert.Nil(t, resp.ReleaseDate)
	assert.Nil(t, resp.ReleaseAt)
}

func TestCreateReleaseTimeWithoutDateRejected(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/releases",
		`{"title":"Orphan Time","release_time":"18:00"}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(r, http.MethodPost, "/api/admin/releases",
		`{"title":"Orphan Zone","time_zone":"Europe/Stockholm"}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateReleaseBadDateRejected(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/releases",
		`{"title":"Bad Date","release_date":"01/05/2099"}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateReleaseBadTimeFallsBackToMidnight(t *testing.T) {
	r, _, token := newTestServer(t)

	resp := createRelease(t, r, token,
		`{"title":"Sloppy Clock","release_date":"2099-05-01","release_time":"25:99"}`)

	require.NotNil(t, resp.ReleaseAt)
	assert.Equal(t, "2099-05-01T00:00:00Z", *resp.ReleaseAt)
}

func TestCreateReleaseTimezoneWallClock(t *testing.T) {
	r, _, token := newTestServer(t)

	resp := createRelease(t, r, token,
		`{"title":"Stockholm Drop","release_date":"2099-06-01","release_time":"09:00","time_zone":"Europe/Stockholm"}`)

	require.NotNil(t, resp.ReleaseAt)
	// June in Stockholm is CEST
	assert.Equal(t, "2099-06-01T09:00:00+02:00", *resp.ReleaseAt)
	require.NotNil(t, resp.ReleaseDate)
	assert.Equal(t, "2099-06-01", *resp.ReleaseDate)
}

func TestCreateReleaseUnknownZoneFallsBackToUTC(t *testing.T) {
	r, _, token := newTestServer(t)

	resp := createRelease(t, r, token,
		`{"title":"Nowhere","release_date":"2099-06-01","release_time":"09:00","time_zone":"Not/AZone"}`)

	require.NotNil(t, resp.ReleaseAt)
	assert.Equal(t, "2099-06-01T09:00:00Z", *resp.ReleaseAt)
}

func TestCreateReleaseSanitizesTagsAndLinks(t *testing.T) {
	r, _, token := newTestServer(t)

	resp := createRelease(t, r, token, `{
		"title": "Tagged",
		"tags": [" synthpop", "synthpop", "", "live"],
		"streaming_links": [
			{"platform": "spotify", "url": "https://open.spotify.com/album/x"},
			{"platform": "", "url": "https://example.com"},
			{"platform": "bandcamp", "url": "not a url"}
		]
	}`)

	assert.Equal(t, []string{"synthpop", "live"}, resp.Tags)
	require.Len(t, resp.StreamingLinks, 1)
	assert.Equal(t, "spotify", resp.StreamingLinks[0].Platform)
}

func TestReorderReleasesRoundTrip(t *testing.T) {
	r, _, token := newTestServer(t)

	a := createRelease(t, r, token, `{"title":"First"}`)
	b := createRelease(t, r, token, `{"title":"Second"}`)
	c := createRelease(t, r, token, `{"title":"Third"}`)

	// creation appends
	assert.Equal(t, []int{0, 1, 2}, []int{a.SortOrder, b.SortOrder, c.SortOrder})

	w := doJSON(r, http.MethodPut, "/api/admin/releases",
		fmt.Sprintf(`{"ids":[%d,%d,%d]}`, c.ID, a.ID, b.ID), token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/admin/releases", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []packets.ReleaseResponse
	decodeBody(t, w, &listed)
	require.Len(t, listed, 3)
	assert.Equal(t, []int{c.ID, a.ID, b.ID}, []int{listed[0].ID, listed[1].ID, listed[2].ID})
}

func TestReorderReleasesRejectsStaleBatch(t *testing.T) {
	r, _, token := newTestServer(t)

	a := createRelease(t, r, token, `{"title":"First"}`)
	b := createRelease(t, r, token, `{"title":"Second"}`)

	// unknown ID
	w := doJSON(r, http.MethodPut, "/api/admin/releases",
		fmt.Sprintf(`{"ids":[%d,%d,9999]}`, a.ID, b.ID), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing ID
	w = doJSON(r, http.MethodPut, "/api/admin/releases",
		fmt.Sprintf(`{"ids":[%d]}`, b.ID), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// duplicate ID
	w = doJSON(r, http.MethodPut, "/api/admin/releases",
		fmt.Sprintf(`{"ids":[%d,%d]}`, a.ID, a.ID), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// nothing moved
	w = doJSON(r, http.MethodGet, "/api/admin/releases", "", token)
	var listed []packets.ReleaseResponse
	decodeBody(t, w, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, a.ID, listed[0].ID)
	assert.Equal(t, b.ID, listed[1].ID)
}

func TestUpdateReleaseReResolvesTiming(t *testing.T) {
	r, _, token := newTestServer(t)

	created := createRelease(t, r, token,
		`{"title":"Shifting","release_date":"2099-05-01","release_time":"12:00"}`)
	require.NotNil(t, created.ReleaseAt)

	// resubmitting without timing fields clears the schedule
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/releases/%d", created.ID),
		`{"title":"Shifting"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated packets.ReleaseResponse
	decodeBody(t, w, &updated)
	assert.Nil(t, updated.ReleaseDate)
	assert.Nil(t, updated.ReleaseAt)
	assert.Nil(t, updated.ReleaseTime)
	assert.True(t, updated.ComingSoon)
}

func TestUpdateReleaseNotFound(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPut, "/api/admin/releases/42", `{"title":"Ghost"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRelease(t *testing.T) {
	r, _, token := newTestServer(t)

	created := createRelease(t, r, token, `{"title":"Doomed"}`)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/releases/%d", created.ID), "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/admin/releases/%d", created.ID), "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
