package db

import (
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/coh-music/backend/internal/model"
)

// ErrDuplicateEmail is returned when a newsletter signup hits the
// unique constraint on subscribers.email.
var ErrDuplicateEmail = errors.New("email already subscribed")

func (s *pgStore) CreateSubscriber(email, unsubscribeToken string) (model.Subscriber, error) {
	var sub model.Subscriber
	const q = `
	INSERT INTO subscribers (email, unsubscribe_token, created_at)
	VALUES ($1, $2, now())
	RETURNING id, email, unsubscribe_token, created_at;`
	if err := s.db.Get(&sub, q, email, unsubscribeToken); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.Subscriber{}, ErrDuplicateEmail
		}
		log.Error().Err(err).Msg("[db] CreateSubscriber: failed to insert subscriber")
		return model.Subscriber{}, err
	}
	return sub, nil
}

func (s *pgStore) ListSubscribers() ([]model.Subscriber, error) {
	var all []model.Subscriber
	const q = `
	SELECT id, email, unsubscribe_token, created_at
	FROM subscribers
	ORDER BY created_at DESC;`
	if err := s.db.Select(&all, q); err != nil {
		log.Error().Err(err).Msg("[db] ListSubscribers: failed to select subscribers")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) DeleteSubscriberByToken(token string) error {
	res, err := s.db.Exec(`DELETE FROM subscribers WHERE unsubscribe_token = $1;`, token)
	if err != nil {
		log.Error().Err(err).Msg("[db] DeleteSubscriberByToken: failed to delete subscriber")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no such subscriber")
	}
	return nil
}
