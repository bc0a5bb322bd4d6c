package postgres

import (
	"errors"
	"strings"
	"testing"

	"humancapital-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("op", nil))
	assert.ErrorIs(t, translateError("op", pgx.ErrNoRows), domain.ErrNotFound)

	dup := translateError("create application", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_applications_candidate_job"})
	assert.ErrorIs(t, dup, domain.ErrDuplicate)
	assert.Contains(t, dup.Error(), "uq_applications_candidate_job")

	assert.ErrorIs(t, translateError("op", &pgconn.PgError{Code: pgInvalidText}), domain.ErrNotFound)
	assert.ErrorIs(t, translateError("op", &pgconn.PgError{Code: pgForeignKeyViolation}), domain.ErrNotFound)

	other := errors.New("connection reset")
	wrapped := translateError("list jobs", other)
	assert.ErrorIs(t, wrapped, other)
	assert.Equal(t, "list jobs: connection reset", wrapped.Error())
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%front%", likePattern("front"))
	assert.Equal(t, `%100\%\_done\\%`, likePattern(`100%_done\`))
}

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())

	w.addRaw("j.is_active = TRUE")
	w.add("j.category = ?", "IT")
	w.add("(j.title ILIKE ? OR co.name ILIKE ?)", "%go%")
	limit := w.next(20)

	assert.Equal(t, " WHERE j.is_active = TRUE AND j.category = $1 AND (j.title ILIKE $2 OR co.name ILIKE $2)", w.sql())
	assert.Equal(t, "$3", limit)
	assert.Equal(t, []any{"IT", "%go%", 20}, w.args)
}

func columnIndex(t *testing.T, columns, name string) int {
	t.Helper()
	for i, col := range strings.Split(columns, ",") {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	t.Fatalf("column %s not found", name)
	return -1
}

func TestDestMatchesColumns(t *testing.T) {
	count := func(columns string) int { return len(strings.Split(columns, ",")) }

	assert.Len(t, candidateDest(&domain.Candidate{}), count(candidateColumns))
	assert.Len(t, companyDest(&domain.Company{}), count(companyColumns))
	assert.Len(t, jobDest(&domain.Job{}), count(jobColumns))
	assert.Len(t, applicationDest(&domain.Application{}), count(applicationColumns))
}

// text[] result columns arrive in the binary format
func TestCandidateDestDecodesBinarySkills(t *testing.T) {
	m := pgtype.NewMap()
	idx := columnIndex(t, candidateColumns, "c.skills")

	t.Run("Should decode skills in order", func(t *testing.T) {
		buf, err := m.Encode(pgtype.TextArrayOID, pgtype.BinaryFormatCode, []string{"React", "Node"}, nil)
		require.NoError(t, err)

		var c domain.Candidate
		require.NoError(t, m.Scan(pgtype.TextArrayOID, pgtype.BinaryFormatCode, buf, candidateDest(&c)[idx]))
		assert.Equal(t, []string{"React", "Node"}, c.Skills)
	})

	t.Run("Should decode the empty column default", func(t *testing.T) {
		buf, err := m.Encode(pgtype.TextArrayOID, pgtype.BinaryFormatCode, []string{}, nil)
		require.NoError(t, err)

		c := domain.Candidate{Skills: []string{"stale"}}
		require.NoError(t, m.Scan(pgtype.TextArrayOID, pgtype.BinaryFormatCode, buf, candidateDest(&c)[idx]))
		assert.Empty(t, c.Skills)
	})
}
