package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang-migrate/migrate/v4/database"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMigrationErrorAttrs(t *testing.T) {
	t.Run("Should expose the server error of a failed statement", func(t *testing.T) {
		err := database.Error{
			Line:    12,
			Err:     "migration failed",
			OrigErr: &pq.Error{Code: "42P07", Detail: "relation exists", Hint: "drop it"},
		}
		attrs := migrationErrorAttrs(fmt.Errorf("run: %w", err))

		assert.Equal(t, []any{
			"error", fmt.Errorf("run: %w", err),
			"line", err.Line,
			"code", "42P07", "detail", "relation exists", "hint", "drop it",
		}, attrs)
	})

	t.Run("Should only carry the error otherwise", func(t *testing.T) {
		plain := errors.New("dial tcp: refused")
		assert.Equal(t, []any{"error", plain}, migrationErrorAttrs(plain))
	})
}
