package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/model"
	"github.com/coh-music/backend/internal/ordering"
)

const releaseColumns = `
	id, title, slug, description, cover_url,
	release_date, release_time, time_zone, release_at, coming_soon,
	tags, streaming_links, sort_order, created_by, created_at, updated_at`

// CreateRelease appends the new release at the end of the catalog:
// sort_order is computed as max+1 inside the same transaction as the
// insert so two concurrent creates cannot claim the same slot. Results
// are named so the deferred commit's failure reaches the caller.
func (s *pgStore) CreateRelease(p CreateReleaseParams) (r model.Release, err error) {
	tx, txErr := s.db.Beginx()
	if txErr != nil {
		return model.Release{}, txErr
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var existing []int
	if err = tx.Select(&existing, `SELECT sort_order FROM releases FOR UPDATE;`); err != nil {
		log.Error().Err(err).Msg("[db] CreateRelease: failed to read sort orders")
		return model.Release{}, err
	}

	query := `
	INSERT INTO releases
	(title, slug, description, cover_url,
	 release_date, release_time, time_zone, release_at, coming_soon,
	 tags, streaming_links, sort_order, created_by, created_at, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
	RETURNING ` + releaseColumns + `;`

	if err = tx.Get(&r, query,
		p.Title,
		p.Slug,
		p.Description,
		p.CoverURL,
		p.Timing.ReleaseDate,
		p.Timing.ReleaseTime,
		p.Timing.TimeZone,
		p.Timing.ReleaseAt,
		p.Timing.ComingSoon,
		pq.Array(p.Tags),
		p.StreamingLinks,
		ordering.Next(existing),
		p.CreatedBy,
	); err != nil {
		log.Error().Err(err).Msg("[db] CreateRelease: failed to insert release")
		return model.Release{}, err
	}
	return r, nil
}

func (s *pgStore) GetReleaseByID(id int) (model.Release, error) {
	var r model.Release
	query := `SELECT ` + releaseColumns + ` FROM releases WHERE id = $1;`
	if err := s.db.Get(&r, query, id); err != nil {
		return model.Release{}, err
	}
	return r, nil
}

func (s *pgStore) GetReleaseBySlug(slug string) (model.Release, error) {
	var r model.Release
	query := `SELECT ` + releaseColumns + ` FROM releases WHERE slug = $1;`
	if err := s.db.Get(&r, query, slug); err != nil {
		return model.Release{}, err
	}
	return r, nil
}

func (s *pgStore) ListReleases() ([]model.Release, error) {
	var all []model.Release
	query := `
	SELECT ` + releaseColumns + `
	FROM releases
	ORDER BY sort_order ASC, created_at DESC;`
	if err := s.db.Select(&all, query); err != nil {
		log.Error().Err(err).Msg("[db] ListReleases: failed to select releases")
		return nil, err
	}
	return all, nil
}

// UpdateRelease rewrites the five timing columns as one unit; partial
// patches of release_date/release_time/time_zone would let release_at
// drift from its source inputs.
func (s *pgStore) UpdateRelease(id int, p UpdateReleaseParams) error {
	var tags any
	if p.Tags != nil {
		tags = pq.Array(p.Tags)
	}
	var links any
	if p.StreamingLinks != nil {
		links = p.StreamingLinks
	}

	_, err := s.db.Exec(`
		UPDATE releases
		SET
		title           = COALESCE($2, title),
		slug            = COALESCE($3, slug),
		description     = COALESCE($4, description),
		cover_url       = COALESCE($5, cover_url),
		release_date    = $6,
		release_time    = $7,
		time_zone       = $8,
		release_at      = $9,
		coming_soon     = $10,
		tags            = COALESCE($11, tags),
		streaming_links = COALESCE($12, streaming_links),
		updated_at      = now()
		WHERE id = $1;`,
		id,
		p.Title,
		p.Slug,
		p.Description,
		p.CoverURL,
		p.Timing.ReleaseDate,
		p.Timing.ReleaseTime,
		p.Timing.TimeZone,
		p.Timing.ReleaseAt,
		p.Timing.ComingSoon,
		tags,
		links,
	)
	if err != nil {
		log.Error().Err(err).Msg("[db] UpdateRelease: failed to update release")
	}
	return err
}

func (s *pgStore) DeleteRelease(id int) error {
	_, err := s.db.Exec(`DELETE FROM releases WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Msg("[db] DeleteRelease: failed to delete release")
	}
	return err
}

func (s *pgStore) ReorderReleases(orderedIDs []int) error {
	return s.reorderTable("releases", orderedIDs)
}
