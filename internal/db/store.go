// exposes a Store interface that is passed into API modules
package db

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/courtside-labs/courtside/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// saved plan functions
	SavePlan(userID int, weekOf string, payload json.RawMessage) (*model.Plan, error)
	GetPlanByID(id int) (*model.Plan, error)
	ListPlans(userID int) ([]model.Plan, error)
	DeletePlan(id int) error

	// email audit trail
	LogEmail(userID *int, recipient, subject, messageID string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
