package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "student_created_at",
		"full_name":  "student_full_name",
	}

	p := Params{SortBy: "full_name", SortOrder: "desc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_full_name DESC", clause)

	// Unknown keys fall back to the default column.
	p = Params{SortBy: "password; DROP TABLE users", SortOrder: "asc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_created_at ASC", clause)

	// Anything but asc sorts descending.
	p = Params{SortBy: "created_at", SortOrder: "sideways"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_created_at DESC", clause)
}

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 25, meta.PerPage)
	assert.Equal(t, 5, meta.TotalPages)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, meta.TotalPages)
}
