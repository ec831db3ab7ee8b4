package endpoints

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coh-music/backend/internal/http/api/admin/packets"
)

func doMultipart(t *testing.T, r http.Handler, path, fileField, filename string, fields map[string]string, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGalleryUploadAndReorder(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doMultipart(t, r, "/api/admin/gallery", "image", "cover.jpg",
		map[string]string{"title": "Live in Oslo", "alt_text": "stage shot"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var first packets.GalleryItemResponse
	decodeBody(t, w, &first)
	require.NotNil(t, first.Title)
	assert.Equal(t, "Live in Oslo", *first.Title)
	assert.True(t, strings.HasPrefix(first.ImageURL, "/"), "local storage should return a site-relative URL")
	assert.Equal(t, 0, first.SortOrder)

	w = doMultipart(t, r, "/api/admin/gallery", "image", "backstage.png", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var second packets.GalleryItemResponse
	decodeBody(t, w, &second)

	w = doJSON(r, http.MethodPut, "/api/admin/gallery",
		fmt.Sprintf(`{"ids":[%d,%d]}`, second.ID, first.ID), token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/gallery", "", token)
	var listed []packets.GalleryItemResponse
	decodeBody(t, w, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/gallery", `{"title":"no file"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVideoCRUDAndReorder(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/videos",
		`{"title":"Tour Diary","embed_url":"https://www.youtube.com/embed/abc123"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var a packets.VideoResponse
	decodeBody(t, w, &a)
	assert.Equal(t, 0, a.SortOrder)

	w = doJSON(r, http.MethodPost, "/api/admin/videos",
		`{"title":"Official Video","embed_url":"https://www.youtube.com/embed/def456"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	var b packets.VideoResponse
	decodeBody(t, w, &b)

	// missing embed_url fails binding
	w = doJSON(r, http.MethodPost, "/api/admin/videos", `{"title":"broken"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/videos/%d", a.ID),
		`{"title":"Tour Diary, Pt. 1"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &a)
	assert.Equal(t, "Tour Diary, Pt. 1", a.Title)

	w = doJSON(r, http.MethodPut, "/api/admin/videos",
		fmt.Sprintf(`{"ids":[%d,%d]}`, b.ID, a.ID), token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/videos", "", token)
	var listed []packets.VideoResponse
	decodeBody(t, w, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, b.ID, listed[0].ID)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/videos/%d", b.ID), "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/videos", "", token)
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
}

func TestPressKitLinks(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/press/kit",
		`{"label":"Press photos","url":"https://cdn.example.com/press.zip"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var link packets.PressKitLinkResponse
	decodeBody(t, w, &link)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/admin/press/kit/%d", link.ID),
		`{"label":"Press photos (2026)"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/press/kit", "", token)
	var listed []packets.PressKitLinkResponse
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Press photos (2026)", listed[0].Label)
	assert.Equal(t, "https://cdn.example.com/press.zip", listed[0].URL)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/press/kit/%d", link.ID), "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/press/kit", "", token)
	decodeBody(t, w, &listed)
	assert.Empty(t, listed)
}

func TestPressReleasesFeaturedFirst(t *testing.T) {
	r, _, token := newTestServer(t)

	post := func(body string) packets.PressReleaseResponse {
		w := doJSON(r, http.MethodPost, "/api/admin/press/releases", body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp packets.PressReleaseResponse
		decodeBody(t, w, &resp)
		return resp
	}

	older := post(`{"title":"Debut announced","body":"...","date":"2024-01-10"}`)
	newer := post(`{"title":"Tour dates","body":"...","date":"2025-03-02"}`)
	featured := post(`{"title":"Album of the week","body":"...","date":"2023-06-01","featured":true}`)

	w := doJSON(r, http.MethodGet, "/api/admin/press/releases", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []packets.PressReleaseResponse
	decodeBody(t, w, &listed)
	require.Len(t, listed, 3)
	assert.Equal(t, featured.ID, listed[0].ID)
	assert.Equal(t, newer.ID, listed[1].ID)
	assert.Equal(t, older.ID, listed[2].ID)
}

func TestPressReleaseBadDateRejected(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/admin/press/releases",
		`{"title":"Bad date","body":"...","date":"June 1st"}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPageUpsert(t *testing.T) {
	r, _, token := newTestServer(t)

	// a known page starts out empty
	w := doJSON(r, http.MethodGet, "/api/admin/pages/hero", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/api/admin/pages/hero",
		`{"heading":"Coh","body":"New album out now"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/admin/pages/hero", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var page packets.PageResponse
	decodeBody(t, w, &page)
	assert.Equal(t, "Coh", page.Heading)

	// second PUT replaces, not duplicates
	w = doJSON(r, http.MethodPut, "/api/admin/pages/hero",
		`{"heading":"Coh","body":"Updated copy"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &page)
	assert.Equal(t, "Updated copy", page.Body)
}

func TestPageUnknownSlugRejected(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doJSON(r, http.MethodPut, "/api/admin/pages/blog",
		`{"heading":"x","body":"y"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribersListing(t *testing.T) {
	r, store, token := newTestServer(t)

	_, err := store.CreateSubscriber("fan@example.com", "tok-1")
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/api/admin/subscribers", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []packets.SubscriberResponse
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "fan@example.com", listed[0].Email)
}

func TestMediaUpload(t *testing.T) {
	r, _, token := newTestServer(t)

	w := doMultipart(t, r, "/api/admin/media", "file", "teaser.mp3", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp packets.UploadResponse
	decodeBody(t, w, &resp)
	assert.True(t, strings.HasSuffix(resp.URL, ".mp3"))
}
