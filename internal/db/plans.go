package db

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/model"
)

// SavePlan stores one optimization run's full response payload.
func (s *pgStore) SavePlan(userID int, weekOf string, payload json.RawMessage) (*model.Plan, error) {
	query := `
	INSERT INTO plans (week_of, payload, created_by, created_at)
	VALUES ($1, $2, $3, now())
	RETURNING id, week_of, payload, created_by, created_at;
	`
	var p model.Plan
	if err := s.db.Get(&p, query, weekOf, payload, userID); err != nil {
		log.Error().Msg("failed to save plan")
		return nil, err
	}
	return &p, nil
}

func (s *pgStore) GetPlanByID(id int) (*model.Plan, error) {
	var p model.Plan
	query := `
	SELECT id, week_of, payload, created_by, created_at
	FROM plans
	WHERE id = $1;
	`
	err := s.db.Get(&p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Msg("failed to get plan by id")
		return nil, err
	}
	return &p, nil
}

// ListPlans returns a user's saved plans, newest first.
func (s *pgStore) ListPlans(userID int) ([]model.Plan, error) {
	var plans []model.Plan
	query := `
	SELECT id, week_of, payload, created_by, created_at
	FROM plans
	WHERE created_by = $1
	ORDER BY created_at DESC;
	`
	if err := s.db.Select(&plans, query, userID); err != nil {
		log.Error().Msg("failed to list plans")
		return nil, err
	}
	return plans, nil
}

func (s *pgStore) DeletePlan(id int) error {
	res, err := s.db.Exec(`DELETE FROM plans WHERE id = $1;`, id)
	if err != nil {
		log.Error().Msg("failed to delete plan - exec")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no such plan")
	}
	return nil
}

// LogEmail records one delivery for the audit trail. userID is nil when
// the unauthenticated endpoint sent the email.
func (s *pgStore) LogEmail(userID *int, recipient, subject, messageID string) error {
	query := `
	INSERT INTO email_log (user_id, recipient, subject, message_id, sent_at)
	VALUES ($1, $2, $3, $4, now());
	`
	if _, err := s.db.Exec(query, userID, recipient, subject, messageID); err != nil {
		log.Error().Msg("failed to log email")
		return err
	}
	return nil
}
