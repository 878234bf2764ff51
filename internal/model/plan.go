package model

import (
	"encoding/json"
	"time"
)

// Plan is a saved optimization run: the full response payload as returned
// to the client, kept so a user can revisit earlier weeks.
type Plan struct {
	ID        int             `db:"id" json:"id"`
	WeekOf    string          `db:"week_of" json:"week_of"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	CreatedBy int             `db:"created_by" json:"created_by"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
