package db

import (
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/ordering"
)

// reorderTable persists a drag-reorder batch for any table carrying a
// sort_order column. The batch runs in a single transaction: the live
// IDs are read under FOR UPDATE, validated as an exact permutation of
// the submitted IDs, then rewritten to their zero-based index. Any
// unknown or missing ID aborts the whole batch (ordering.ErrNotFound),
// so readers never observe a mix of old and new positions. The error
// result is named so the deferred commit's failure reaches the caller.
func (s *pgStore) reorderTable(table string, orderedIDs []int) (err error) {
	tx, txErr := s.db.Beginx()
	if txErr != nil {
		return txErr
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var current []int
	if err = tx.Select(&current, `SELECT id FROM `+table+` FOR UPDATE;`); err != nil {
		log.Error().Err(err).Str("table", table).Msg("[db] reorder: failed to read ids")
		return err
	}

	assignments, aerr := ordering.Assignments(current, orderedIDs)
	if aerr != nil {
		err = aerr
		return err
	}

	for id, idx := range assignments {
		if _, err = tx.Exec(
			`UPDATE `+table+` SET sort_order = $1 WHERE id = $2;`,
			idx, id,
		); err != nil {
			log.Error().Err(err).Str("table", table).Int("id", id).
				Msg("[db] reorder: failed to update sort order")
			return err
		}
	}
	return nil
}
