package db

import (
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/model"
)

// @ PRESS KIT

func (s *pgStore) CreatePressKitLink(label, url string) (model.PressKitLink, error) {
	var l model.PressKitLink
	const q = `
	INSERT INTO press_kit_links (label, url, created_at)
	VALUES ($1, $2, now())
	RETURNING id, label, url, created_at;`
	if err := s.db.Get(&l, q, label, url); err != nil {
		log.Error().Err(err).Msg("[db] CreatePressKitLink: failed to insert link")
		return model.PressKitLink{}, err
	}
	return l, nil
}

func (s *pgStore) ListPressKitLinks() ([]model.PressKitLink, error) {
	var all []model.PressKitLink
	const q = `SELECT id, label, url, created_at FROM press_kit_links ORDER BY id;`
	if err := s.db.Select(&all, q); err != nil {
		log.Error().Err(err).Msg("[db] ListPressKitLinks: failed to select links")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) UpdatePressKitLink(id int, label, url *string) error {
	_, err := s.db.Exec(`
		UPDATE press_kit_links
		SET
		label = COALESCE($2, label),
		url   = COALESCE($3, url)
		WHERE id = $1;`,
		id, label, url,
	)
	if err != nil {
		log.Error().Err(err).Msg("[db] UpdatePressKitLink: failed to update link")
	}
	return err
}

func (s *pgStore) DeletePressKitLink(id int) error {
	_, err := s.db.Exec(`DELETE FROM press_kit_links WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("[db] DeletePressKitLink: failed to delete link")
	}
	return err
}

// @ PRESS RELEASES

func (s *pgStore) CreatePressRelease(p CreatePressReleaseParams) (model.PressRelease, error) {
	var pr model.PressRelease
	const q = `
	INSERT INTO press_releases (title, body, source_url, date, featured, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, now())
	RETURNING id, title, body, source_url, date, featured, created_by, created_at;`
	if err := s.db.Get(&pr, q, p.Title, p.Body, p.SourceURL, p.Date, p.Featured, p.CreatedBy); err != nil {
		log.Error().Err(err).Msg("[db] CreatePressRelease: failed to insert press release")
		return model.PressRelease{}, err
	}
	return pr, nil
}

func (s *pgStore) GetPressReleaseByID(id int) (model.PressRelease, error) {
	var pr model.PressRelease
	const q = `
	SELECT id, title, body, source_url, date, featured, created_by, created_at
	FROM press_releases
	WHERE id = $1;`
	if err := s.db.Get(&pr, q, id); err != nil {
		return model.PressRelease{}, err
	}
	return pr, nil
}

// press releases have no manual sort_order; featured items lead, then
// newest publication date, then newest row.
func (s *pgStore) ListPressReleases() ([]model.PressRelease, error) {
	var all []model.PressRelease
	const q = `
	SELECT id, title, body, source_url, date, featured, created_by, created_at
	FROM press_releases
	ORDER BY featured DESC, date DESC, created_at DESC;`
	if err := s.db.Select(&all, q); err != nil {
		log.Error().Err(err).Msg("[db] ListPressReleases: failed to select press releases")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) UpdatePressRelease(id int, p UpdatePressReleaseParams) error {
	_, err := s.db.Exec(`
		UPDATE press_releases
		SET
		title      = COALESCE($2, title),
		body       = COALESCE($3, body),
		source_url = COALESCE($4, source_url),
		date       = COALESCE($5, date),
		featured   = COALESCE($6, featured)
		WHERE id = $1;`,
		id, p.Title, p.Body, p.SourceURL, p.Date, p.Featured,
	)
	if err != nil {
		log.Error().Err(err).Msg("[db] UpdatePressRelease: failed to update press release")
	}
	return err
}

func (s *pgStore) DeletePressRelease(id int) error {
	_, err := s.db.Exec(`DELETE FROM press_releases WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("[db] DeletePressRelease: failed to delete press release")
	}
	return err
}
