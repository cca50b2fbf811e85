package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect_WithWindowConditions(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "match_day").
		From("matches").
		Where(
			Eq("season", "2025-2026"),
			Gte("match_day", 2),
			Lte("match_day", 5),
		).
		OrderBy("match_day", "date").
		ToSQL()

	require.NoError(t, err)
	require.Equal(t,
		"SELECT id, match_day FROM matches WHERE season = $1 AND match_day >= $2 AND match_day <= $3 ORDER BY match_day, date",
		query,
	)
	require.Equal(t, []any{"2025-2026", 2, 5}, args)
}

func TestSelect_RequiresTable(t *testing.T) {
	t.Parallel()

	_, _, err := Select("id").ToSQL()
	require.Error(t, err)
}

func TestIn_EmptyValuesNeverMatch(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("teams").Where(In("id", nil)).ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM teams WHERE 1=0", query)
	require.Empty(t, args)
}

func TestInsert_MultiRowWithSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("teams").
		Columns("id", "name").
		Values(int64(1), "Olympique Nord").
		Values(int64(2), "Racing Sud").
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()

	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO teams (id, name) VALUES ($1, $2), ($3, $4) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name",
		query,
	)
	require.Len(t, args, 4)
}

func TestInsert_RowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("teams").Columns("id", "name").Values(int64(1)).ToSQL()
	require.Error(t, err)
}

func TestDelete_RequiresWhere(t *testing.T) {
	t.Parallel()

	_, _, err := DeleteFrom("matches").ToSQL()
	require.Error(t, err)

	query, args, err := DeleteFrom("matches").Where(Eq("season", "2024-2025")).ToSQL()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM matches WHERE season = $1", query)
	require.Equal(t, []any{"2024-2025"}, args)
}
