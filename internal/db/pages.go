package db

import (
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/model"
)

func (s *pgStore) GetPage(slug string) (model.Page, error) {
	var p model.Page
	const q = `
	SELECT slug, heading, body, image_url, updated_at
	FROM pages
	WHERE slug = $1;`
	if err := s.db.Get(&p, q, slug); err != nil {
		return model.Page{}, err
	}
	return p, nil
}

// UpsertPage creates or replaces the singleton page for a slug.
func (s *pgStore) UpsertPage(slug, heading, body string, imageURL *string) (model.Page, error) {
	var p model.Page
	const q = `
	INSERT INTO pages (slug, heading, body, image_url, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (slug) DO UPDATE
	SET heading = EXCLUDED.heading,
	    body = EXCLUDED.body,
	    image_url = EXCLUDED.image_url,
	    updated_at = now()
	RETURNING slug, heading, body, image_url, updated_at;`
	if err := s.db.Get(&p, q, slug, heading, body, imageURL); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("[db] UpsertPage: failed to upsert page")
		return model.Page{}, err
	}
	return p, nil
}
