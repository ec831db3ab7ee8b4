package db

import (
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/ordering"
)

func (s *pgStore) CreateGalleryItem(title *string, imageURL string, altText *string, createdBy int) (g model.GalleryItem, err error) {
	tx, txErr := s.db.Beginx()
	if txErr != nil {
		return model.GalleryItem{}, txErr
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var existing []int
	if err = tx.Select(&existing, `SELECT sort_order FROM gallery_items FOR UPDATE;`); err != nil {
		log.Error().Err(err).Msg("[db] CreateGalleryItem: failed to read sort orders")
		return model.GalleryItem{}, err
	}

	query := `
	INSERT INTO gallery_items
	(title, image_url, alt_text, sort_order, created_by, created_at)
	VALUES
	($1,    $2,        $3,       $4,         $5,         now())
	RETURNING id, title, image_url, alt_text, sort_order, created_by, created_at;`

	if err = tx.Get(&g, query, title, imageURL, altText, ordering.Next(existing), createdBy); err != nil {
		log.Error().Err(err).Msg("[db] CreateGalleryItem: failed to insert gallery item")
		return model.GalleryItem{}, err
	}
	return g, nil
}

func (s *pgStore) GetGalleryItemByID(id int) (model.GalleryItem, error) {
	var g model.GalleryItem
	query := `
	SELECT id, title, image_url, alt_text, sort_order, created_by, created_at
	FROM gallery_items
	WHERE id = $1;`
	if err := s.db.Get(&g, query, id); err != nil {
		return model.GalleryItem{}, err
	}
	return g, nil
}

func (s *pgStore) ListGallery() ([]model.GalleryItem, error) {
	var all []model.GalleryItem
	query := `
	SELECT id, title, image_url, alt_text, sort_order, created_by, created_at
	FROM gallery_items
	ORDER BY sort_order ASC, created_at DESC;`
	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("[db] ListGallery: failed to select gallery items")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) UpdateGalleryItem(id int, title, altText *string) error {
	_, err := s.db.Exec(`
		UPDATE gallery_items
		SET
		title    = COALESCE($2, title),
		alt_text = COALESCE($3, alt_text)
		WHERE id = $1;`,
		id, title, altText,
	)
	if err != nil {
		log.Error().Err(err).Msg("[db] UpdateGalleryItem: failed to update gallery item")
	}
	return err
}

func (s *pgStore) DeleteGalleryItem(id int) error {
	_, err := s.db.Exec(`DELETE FROM gallery_items WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("[db] DeleteGalleryItem: failed to delete gallery item")
	}
	return err
}

func (s *pgStore) ReorderGallery(orderedIDs []int) error {
	return s.reorderTable("gallery_items", orderedIDs)
}
