//go:build integration

package remote

import (
	"context"
	"testing"

	"ofrendas/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgresTables_CRUD(t *testing.T) {
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("ofrendas_test"),
		tcPostgres.WithUsername("ofrendas"),
		tcPostgres.WithPassword("ofrendas"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db), "schema patches are idempotent")

	pg := NewPostgresTables(db)

	ana, err := pg.AddItem(ctx, TablaMiembros, Item{"name": "Ana", "is_active": true})
	require.NoError(t, err)
	require.NotEmpty(t, ana.ID())
	_, err = pg.AddItem(ctx, TablaMiembros, Item{"name": "Luis", "is_active": true})
	require.NoError(t, err)

	_, err = pg.AddItem(ctx, TablaMiembros, Item{"name": "ANA", "is_active": true})
	assert.Error(t, err, "names are unique regardless of case")

	items, err := pg.FetchItems(ctx, TablaMiembros)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ana", items[0].String("name"), "oldest first")

	up, err := pg.UpdateItem(ctx, TablaMiembros, ana.ID(), Item{"is_active": false})
	require.NoError(t, err)
	assert.False(t, up.Bool("is_active"))

	_, err = pg.UpdateItem(ctx, TablaMiembros, "nope", Item{"name": "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, pg.DeleteItem(ctx, TablaMiembros, ana.ID()))
	require.NoError(t, pg.DeleteItem(ctx, TablaMiembros, ana.ID()))
	items, err = pg.FetchItems(ctx, TablaMiembros)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = pg.FetchItems(ctx, "usuarios")
	assert.ErrorIs(t, err, ErrTablaInvalida)
}
