package db

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/ordering"
)

// MemStore is an in-memory Store used by endpoint tests so handlers can
// be exercised through httptest without a live database. Ordering and
// reorder semantics go through the same internal/ordering rules as the
// SQL store.
type MemStore struct {
	mu sync.Mutex

	nextID      int
	users       map[int]*model.User
	releases    map[int]*model.Release
	gallery     map[int]*model.GalleryItem
	videos      map[int]*model.Video
	kitLinks    map[int]*model.PressKitLink
	pressRels   map[int]*model.PressRelease
	pages       map[string]*model.Page
	subscribers map[int]*model.Subscriber
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:       map[int]*model.User{},
		releases:    map[int]*model.Release{},
		gallery:     map[int]*model.GalleryItem{},
		videos:      map[int]*model.Video{},
		kitLinks:    map[int]*model.PressKitLink{},
		pressRels:   map[int]*model.PressRelease{},
		pages:       map[string]*model.Page{},
		subscribers: map[int]*model.Subscriber{},
	}
}

func (m *MemStore) id() int {
	m.nextID++
	return m.nextID
}

// user functions

func (m *MemStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	now := time.Now()
	m.users[id] = &model.User{
		ID: id, Email: email, HashedPassword: hashedPassword, Name: name,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (m *MemStore) GetUserByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemStore) GetUserByID(id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (m *MemStore) UpdateUserProfile(id int, email string, name *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Email = email
	u.Name = name
	u.UpdatedAt = time.Now()
	return nil
}

// release functions

func (m *MemStore) releaseSortOrders() []int {
	out := make([]int, 0, len(m.releases))
	for _, r := range m.releases {
		out = append(out, r.SortOrder)
	}
	return out
}

func (m *MemStore) CreateRelease(p CreateReleaseParams) (model.Release, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	now := time.Now()
	r := &model.Release{
		ID:             id,
		Title:          p.Title,
		Slug:           p.Slug,
		Description:    p.Description,
		CoverURL:       p.CoverURL,
		ReleaseDate:    p.Timing.ReleaseDate,
		ReleaseTime:    p.Timing.ReleaseTime,
		TimeZone:       p.Timing.TimeZone,
		ReleaseAt:      p.Timing.ReleaseAt,
		ComingSoon:     p.Timing.ComingSoon,
		Tags:           p.Tags,
		StreamingLinks: p.StreamingLinks,
		SortOrder:      ordering.Next(m.releaseSortOrders()),
		CreatedBy:      p.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if r.StreamingLinks == nil {
		r.StreamingLinks = model.StreamingLinks{}
	}
	m.releases[id] = r
	return *r, nil
}

func (m *MemStore) GetReleaseByID(id int) (model.Release, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.releases[id]
	if !ok {
		return model.Release{}, sql.ErrNoRows
	}
	return *r, nil
}

func (m *MemStore) GetReleaseBySlug(slug string) (model.Release, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.releases {
		if r.Slug == slug {
			return *r, nil
		}
	}
	return model.Release{}, sql.ErrNoRows
}

func (m *MemStore) ListReleases() ([]model.Release, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Release, 0, len(m.releases))
	for _, r := range m.releases {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemStore) UpdateRelease(id int, p UpdateReleaseParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.releases[id]
	if !ok {
		return sql.ErrNoRows
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Slug != nil {
		r.Slug = *p.Slug
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.CoverURL != nil {
		r.CoverURL = p.CoverURL
	}
	r.ReleaseDate = p.Timing.ReleaseDate
	r.ReleaseTime = p.Timing.ReleaseTime
	r.TimeZone = p.Timing.TimeZone
	r.ReleaseAt = p.Timing.ReleaseAt
	r.ComingSoon = p.Timing.ComingSoon
	if p.Tags != nil {
		r.Tags = p.Tags
	}
	if p.StreamingLinks != nil {
		r.StreamingLinks = p.StreamingLinks
	}
	r.UpdatedAt = time.Now()
	return nil
}

func (m *MemStore) DeleteRelease(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.releases, id)
	return nil
}

func (m *MemStore) ReorderReleases(orderedIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current := make([]int, 0, len(m.releases))
	for id := range m.releases {
		current = append(current, id)
	}
	assignments, err := ordering.Assignments(current, orderedIDs)
	if err != nil {
		return err
	}
	for id, idx := range assignments {
		m.releases[id].SortOrder = idx
	}
	return nil
}

// gallery functions

func (m *MemStore) CreateGalleryItem(title *string, imageURL string, altText *string, createdBy int) (model.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := make([]int, 0, len(m.gallery))
	for _, g := range m.gallery {
		existing = append(existing, g.SortOrder)
	}
	id := m.id()
	g := &model.GalleryItem{
		ID: id, Title: title, ImageURL: imageURL, AltText: altText,
		SortOrder: ordering.Next(existing), CreatedBy: createdBy, CreatedAt: time.Now(),
	}
	m.gallery[id] = g
	return *g, nil
}

func (m *MemStore) GetGalleryItemByID(id int) (model.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.gallery[id]
	if !ok {
		return model.GalleryItem{}, sql.ErrNoRows
	}
	return *g, nil
}

func (m *MemStore) ListGallery() ([]model.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.GalleryItem, 0, len(m.gallery))
	for _, g := range m.gallery {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemStore) UpdateGalleryItem(id int, title, altText *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.gallery[id]
	if !ok {
		return sql.ErrNoRows
	}
	if title != nil {
		g.Title = title
	}
	if altText != nil {
		g.AltText = altText
	}
	return nil
}

func (m *MemStore) DeleteGalleryItem(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.gallery, id)
	return nil
}

func (m *MemStore) ReorderGallery(orderedIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current := make([]int, 0, len(m.gallery))
	for id := range m.gallery {
		current = append(current, id)
	}
	assignments, err := ordering.Assignments(current, orderedIDs)
	if err != nil {
		return err
	}
	for id, idx := range assignments {
		m.gallery[id].SortOrder = idx
	}
	return nil
}

// video functions

func (m *MemStore) CreateVideo(title, embedURL string, description *string, createdBy int) (model.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := make([]int, 0, len(m.videos))
	for _, v := range m.videos {
		existing = append(existing, v.SortOrder)
	}
	id := m.id()
	v := &model.Video{
		ID: id, Title: title, EmbedURL: embedURL, Description: description,
		SortOrder: ordering.Next(existing), CreatedBy: createdBy, CreatedAt: time.Now(),
	}
	m.videos[id] = v
	return *v, nil
}

func (m *MemStore) GetVideoByID(id int) (model.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.videos[id]
	if !ok {
		return model.Video{}, sql.ErrNoRows
	}
	return *v, nil
}

func (m *MemStore) ListVideos() ([]model.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Video, 0, len(m.videos))
	for _, v := range m.videos {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemStore) UpdateVideo(id int, title, embedURL, description *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.videos[id]
	if !ok {
		return sql.ErrNoRows
	}
	if title != nil {
		v.Title = *title
	}
	if embedURL != nil {
		v.EmbedURL = *embedURL
	}
	if description != nil {
		v.Description = description
	}
	return nil
}

func (m *MemStore) DeleteVideo(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.videos, id)
	return nil
}

func (m *MemStore) ReorderVideos(orderedIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current := make([]int, 0, len(m.videos))
	for id := range m.videos {
		current = append(current, id)
	}
	assignments, err := ordering.Assignments(current, orderedIDs)
	if err != nil {
		return err
	}
	for id, idx := range assignments {
		m.videos[id].SortOrder = idx
	}
	return nil
}

// press functions

func (m *MemStore) CreatePressKitLink(label, url string) (model.PressKitLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	l := &model.PressKitLink{ID: id, Label: label, URL: url, CreatedAt: time.Now()}
	m.kitLinks[id] = l
	return *l, nil
}

func (m *MemStore) ListPressKitLinks() ([]model.PressKitLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.PressKitLink, 0, len(m.kitLinks))
	for _, l := range m.kitLinks {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) UpdatePressKitLink(id int, label, url *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.kitLinks[id]
	if !ok {
		return sql.ErrNoRows
	}
	if label != nil {
		l.Label = *label
	}
	if url != nil {
		l.URL = *url
	}
	return nil
}

func (m *MemStore) DeletePressKitLink(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kitLinks, id)
	return nil
}

func (m *MemStore) CreatePressRelease(p CreatePressReleaseParams) (model.PressRelease, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	pr := &model.PressRelease{
		ID: id, Title: p.Title, Body: p.Body, SourceURL: p.SourceURL,
		Date: p.Date, Featured: p.Featured, CreatedBy: p.CreatedBy, CreatedAt: time.Now(),
	}
	m.pressRels[id] = pr
	return *pr, nil
}

func (m *MemStore) GetPressReleaseByID(id int) (model.PressRelease, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.pressRels[id]
	if !ok {
		return model.PressRelease{}, sql.ErrNoRows
	}
	return *pr, nil
}

func (m *MemStore) ListPressReleases() ([]model.PressRelease, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.PressRelease, 0, len(m.pressRels))
	for _, pr := range m.pressRels {
		out = append(out, *pr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemStore) UpdatePressRelease(id int, p UpdatePressReleaseParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.pressRels[id]
	if !ok {
		return sql.ErrNoRows
	}
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Body != nil {
		pr.Body = *p.Body
	}
	if p.SourceURL != nil {
		pr.SourceURL = p.SourceURL
	}
	if p.Date != nil {
		pr.Date = *p.Date
	}
	if p.Featured != nil {
		pr.Featured = *p.Featured
	}
	return nil
}

func (m *MemStore) DeletePressRelease(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pressRels, id)
	return nil
}

// page functions

func (m *MemStore) GetPage(slug string) (model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pages[slug]
	if !ok {
		return model.Page{}, sql.ErrNoRows
	}
	return *p, nil
}

func (m *MemStore) UpsertPage(slug, heading, body string, imageURL *string) (model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &model.Page{Slug: slug, Heading: heading, Body: body, ImageURL: imageURL, UpdatedAt: time.Now()}
	m.pages[slug] = p
	return *p, nil
}

// subscriber functions

func (m *MemStore) CreateSubscriber(email, unsubscribeToken string) (model.Subscriber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.subscribers {
		if s.Email == email {
			return model.Subscriber{}, ErrDuplicateEmail
		}
	}
	id := m.id()
	sub := &model.Subscriber{ID: id, Email: email, UnsubscribeToken: unsubscribeToken, CreatedAt: time.Now()}
	m.subscribers[id] = sub
	return *sub, nil
}

func (m *MemStore) ListSubscribers() ([]model.Subscriber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Subscriber, 0, len(m.subscribers))
	for _, s := range m.subscribers {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStore) DeleteSubscriberByToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.subscribers {
		if s.UnsubscribeToken == token {
			delete(m.subscribers, id)
			return nil
		}
	}
	return sql.ErrNoRows
}
