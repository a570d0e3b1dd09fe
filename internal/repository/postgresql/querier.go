package postgresql

import (
	"context"

	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/database"
)

// GetQuerier returns the connection pool to run a query on. The engine is
// read-only; repositories issue independent pool queries and rely on the
// database for consistency, there is no transactional write path.
func GetQuerier(_ context.Context, db *database.DB) database.Querier {
	return db.Pool
}
