package repository

import (
	"context"
	"testing"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"jazz", `%jazz%`},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\tmp`, `%c:\\tmp%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.text), tt.text)
	}
}

func TestWhere_Placeholders(t *testing.T) {
	var w where
	w.add("e.state = $%d", domain.StatePublished)
	w.add(`(e.annotation ILIKE $%[1]d ESCAPE '\' OR e.description ILIKE $%[1]d ESCAPE '\')`, containsPattern("x"))

	sql := w.sql() + w.page(domain.Page{From: 0, Size: 10})

	assert.Equal(t,
		` WHERE e.state = $1 AND (e.annotation ILIKE $2 ESCAPE '\' OR e.description ILIKE $2 ESCAPE '\') LIMIT $3 OFFSET $4`,
		sql,
	)
	assert.Equal(t, []any{domain.StatePublished, "%x%", 10, 0}, w.args)
}

func TestEventRepository_GetByIDForUpdate_RequiresTx(t *testing.T) {
	repo := &EventRepository{}

	_, err := repo.GetByIDForUpdate(context.Background(), "e1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transaction")
}
