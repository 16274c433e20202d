package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/repositories"
)

type recordingExecer struct {
	queries []string
	args    [][]any
	err     error
}

func (r *recordingExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if r.err != nil {
		return pgconn.CommandTag{}, r.err
	}
	r.queries = append(r.queries, sql)
	r.args = append(r.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestStatementsCoverEveryTable(t *testing.T) {
	catalog, err := repositories.EmbeddedCatalog()
	require.NoError(t, err)

	var tables []string
	for _, stmt := range Statements(catalog) {
		sql, _, err := stmt.ToSql()
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(sql, "ON CONFLICT DO NOTHING"), sql)
		tables = append(tables, strings.Fields(sql)[2])
	}

	assert.Equal(t, []string{
		"nav_items", "districts", "district_officers", "notices", "service_records",
		"gallery_images", "hero_slides", "publications", "translations",
	}, tables)
}

func TestStatementsKeepCatalogOrder(t *testing.T) {
	catalog := &models.Catalog{
		ServiceRecords: []models.ServiceRecord{
			{ID: "SR002", Title: "B", Date: "2023-01-02", Category: models.CategoryTransfer},
			{ID: "SR001", Title: "A", Date: "2023-01-01", Category: models.CategoryOrder},
		},
	}

	stmts := Statements(catalog)
	require.Len(t, stmts, 1)
	sql, args, err := stmts[0].ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO service_records (id,title,date,category,position) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10) ON CONFLICT DO NOTHING", sql)
	assert.Equal(t, []any{"SR002", "B", "2023-01-02", "Transfer", 0, "SR001", "A", "2023-01-01", "Order", 1}, args)
}

func TestStatementsStoreMissingPhoneAsNull(t *testing.T) {
	catalog := &models.Catalog{
		Districts: []models.District{{
			ID: "kolkata", Name: "Kolkata", MemberCount: 1,
			Officers: []models.Officer{{Role: "President", Name: "Dr. S. Roy"}},
		}},
	}

	stmts := Statements(catalog)
	require.Len(t, stmts, 2)
	_, args, err := stmts[1].ToSql()
	require.NoError(t, err)
	assert.Nil(t, args[4])
}

func TestCreateDefaultData(t *testing.T) {
	catalog, err := repositories.EmbeddedCatalog()
	require.NoError(t, err)

	db := &recordingExecer{}
	require.NoError(t, CreateDefaultData(context.Background(), db, catalog, zerolog.Nop()))
	assert.Len(t, db.queries, 9)
}

func TestCreateDefaultDataStopsOnError(t *testing.T) {
	catalog, err := repositories.EmbeddedCatalog()
	require.NoError(t, err)

	db := &recordingExecer{err: errors.New("relation does not exist")}
	err = CreateDefaultData(context.Background(), db, catalog, zerolog.Nop())
	assert.ErrorContains(t, err, "failed to seed catalog")
}
