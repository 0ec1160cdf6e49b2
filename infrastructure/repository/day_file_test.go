package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rk-metrics/internal/domain"
)

const daySetJSON = `{
  "days": [
    {"date": "10.03.2025", "shows": 10000, "totalShows": 25000, "transitions": 400, "totalTransitions": 1000,
     "cost": 2000, "cartsRk": 20, "cartsTotal": 50, "ordersRk": 3, "orders": 6, "cplRk": 100, "cpm": 200}
  ],
  "details": {
    "10.03.2025": [{"type": "Поиск", "share": 45, "shows": 4500, "cost": 900, "carts": 9, "transitions": 180}]
  }
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDayFileRepository_LoadDays(t *testing.T) {
	tests := []struct {
		name     string
		source   func(t *testing.T) string
		stdin    string
		validate func(t *testing.T, set *domain.DaySet, err error)
	}{
		{
			name:   "Arquivo válido",
			source: func(t *testing.T) string { return writeFile(t, "days.json", daySetJSON) },
			validate: func(t *testing.T, set *domain.DaySet, err error) {
				require.NoError(t, err)
				require.Len(t, set.Days, 1)
				assert.Equal(t, "10.03.2025", set.Days[0].Date)
				assert.Equal(t, 25000.0, set.Days[0].TotalShows)
				assert.Equal(t, 200.0, set.Days[0].CPM)
				require.Len(t, set.Details["10.03.2025"], 1)
				assert.Equal(t, 45, set.Details["10.03.2025"][0].Share)
			},
		},
		{
			name:   "Entrada padrão",
			source: func(t *testing.T) string { return StdinSource },
			stdin:  daySetJSON,
			validate: func(t *testing.T, set *domain.DaySet, err error) {
				require.NoError(t, err)
				assert.Len(t, set.Days, 1)
			},
		},
		{
			name:   "Sem detalhes retorna mapa vazio",
			source: func(t *testing.T) string { return writeFile(t, "days.json", `{"days": []}`) },
			validate: func(t *testing.T, set *domain.DaySet, err error) {
				require.NoError(t, err)
				assert.NotNil(t, set.Details)
				assert.Empty(t, set.Days)
			},
		},
		{
			name:   "Arquivo inexistente",
			source: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			validate: func(t *testing.T, set *domain.DaySet, err error) {
				assert.Nil(t, set)
				assert.Equal(t, ErrSourceNotFound, errors.Cause(err))
			},
		},
		{
			name:   "JSON inválido",
			source: func(t *testing.T) string { return writeFile(t, "days.json", `{"days": [`) },
			validate: func(t *testing.T, set *domain.DaySet, err error) {
				assert.Nil(t, set)
				assert.Equal(t, ErrInvalidSource, errors.Cause(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewDayFileRepository(strings.NewReader(tt.stdin))
			set, err := repo.LoadDays(context.Background(), tt.source(t))
			tt.validate(t, set, err)
		})
	}
}

func TestDayFileRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDayFileRepository(nil).LoadDays(ctx, "days.json")
	assert.ErrorIs(t, err, context.Canceled)
}
