package db

import (
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/ordering"
)

func (s *pgStore) CreateVideo(title, embedURL string, description *string, createdBy int) (v model.Video, err error) {
	tx, txErr := s.db.Beginx()
	if txErr != nil {
		return model.Video{}, txErr
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var existing []int
	if err = tx.Select(&existing, `SELECT sort_order FROM videos FOR UPDATE;`); err != nil {
		log.Error().Err(err).Msg("[db] CreateVideo: failed to read sort orders")
		return model.Video{}, err
	}

	query := `
	INSERT INTO videos
	(title, embed_url, description, sort_order, created_by, created_at)
	VALUES
	($1,    $2,        $3,          $4,         $5,         now())
	RETURNING id, title, embed_url, description, sort_order, created_by, created_at;`

	if err = tx.Get(&v, query, title, embedURL, description, ordering.Next(existing), createdBy); err != nil {
		log.Error().Err(err).Msg("[db] CreateVideo: failed to insert video")
		return model.Video{}, err
	}
	return v, nil
}

func (s *pgStore) GetVideoByID(id int) (model.Video, error) {
	var v model.Video
	query := `
	SELECT id, title, embed_url, description, sort_order, created_by, created_at
	FROM videos
	WHERE id = $1;`
	if err := s.db.Get(&v, query, id); err != nil {
		return model.Video{}, err
	}
	return v, nil
}

func (s *pgStore) ListVideos() ([]model.Video, error) {
	var all []model.Video
	query := `
	SELECT id, title, embed_url, description, sort_order, created_by, created_at
	FROM videos
	ORDER BY sort_order ASC, created_at DESC;`
	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("[db] ListVideos: failed to select videos")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) UpdateVideo(id int, title, embedURL, description *string) error {
	_, err := s.db.Exec(`
		UPDATE videos
		SET
		title       = COALESCE($2, title),
		embed_url   = COALESCE($3, embed_url),
		description = COALESCE($4, description)
		WHERE id = $1;`,
		id, title, embedURL, description,
	)
	if err != nil {
		log.Error().Err(err).Msg("[db] UpdateVideo: failed to update video")
	}
	return err
}

func (s *pgStore) DeleteVideo(id int) error {
	_, err := s.db.Exec(`DELETE FROM videos WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("[db] DeleteVideo: failed to delete video")
	}
	return err
}

func (s *pgStore) ReorderVideos(orderedIDs []int) error {
	return s.reorderTable("videos", orderedIDs)
}
