package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/wbvaa/portal/internal/app/models"
)

// Execer is satisfied by pgx.Tx and pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const onConflictDoNothing = "ON CONFLICT DO NOTHING"

// Statements builds the inserts that copy catalog into the catalog tables.
// Rows that already exist are left untouched.
func Statements(catalog *models.Catalog) []squirrel.InsertBuilder {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	var stmts []squirrel.InsertBuilder

	if len(catalog.NavItems) > 0 {
		q := sb.Insert("nav_items").Columns("id", "label_en", "label_bn", "icon", "position")
		for i, n := range catalog.NavItems {
			q = q.Values(string(n.ID), n.LabelEn, n.LabelBn, n.Icon, i)
		}
		stmts = append(stmts, q.Suffix(onConflictDoNothing))
	}

	if len(catalog.Districts) > 0 {
		districts := sb.Insert("districts").Columns("id", "name", "member_count", "position")
		officers := sb.Insert("district_officers").Columns("district_id", "position", "role", "name", "phone")
		hasOfficers := false
		for i, d := range catalog.Districts {
			districts = districts.Values(d.ID, d.Name, d.MemberCount, i)
			for j, o := range d.Officers {
				var phone any
				if o.Phone != "" {
					phone = o.Phone
				}
				officers = officers.Values(d.ID, j, o.Role, o.Name, phone)
				hasOfficers = true
			}
		}
		stmts = append(stmts, districts.Suffix(onConflictDoNothing))
		if hasOfficers {
			stmts = append(stmts, officers.Suffix(onConflictDoNothing))
		}
	}

	if len(catalog.Notices) > 0 {
		q := sb.Insert("notices").Columns("id", "title", "date", "type", "is_new", "position")
		for i, n := range catalog.Notices {
			q = q.Values(n.ID, n.Title, n.Date, string(n.Type), n.IsNew, i)
		}
		stmts = append(stmts, q.Suffix(onConflictDoNothing))
	}

	if len(catalog.ServiceRecords) > 0 {
		q := sb.Insert("service_records").Columns("id", "title", "date", "category", "position")
		for i, r := range catalog.ServiceRecords {
			q = q.Values(r.ID, r.Title, r.Date, string(r.Category), i)
		}
		stmts = append(stmts, q.Suffix(onConflictDoNothing))
	}

	if len(catalog.GalleryImages) > 0 {
		q := sb.Insert("gallery_images").Columns("id", "drive_id", "caption", "date", "position")
		for i, g := range catalog.GalleryImages {
			var date any
			if g.Date != "" {
				date = g.Date
			}
			q = q.Values(g.ID, g.DriveID, g.Caption, date, i)
		}
		stmts = append(stmts, q.Suffix(onConflictDoNothing))
	}

	if len(catalog.HeroSlides) > 0 {
		q := sb.Insert("hero_slides").Columns("position", "url")
		for i, url := range catalog.HeroSlides {
			q = q.Values(i, url)
		}
		stmts = append(stmts, q.Suffix(onConflictDoNothing))
	}

	if len(catalog.Publications) > 0 {
		q := sb.Insert("publications").Columns("position", "title", "subtitle", "kind")
		for i, p := range catalog.Publications {
			q = q.Values(i, p.Title, p.Subtitle, p.Kind)
		}
		stmts = append(stmts, q.Suffix(onConflictDoNothing))
	}

	if len(catalog.Dictionary) > 0 {
		q := sb.Insert("translations").Columns("key", "en", "bn")
		for _, key := range catalog.Dictionary.Keys() {
			e := catalog.Dictionary[key]
			q = q.Values(key, e.En, e.Bn)
		}
		stmts = append(stmts, q.Suffix(onConflictDoNothing))
	}

	return stmts
}

// CreateDefaultData copies the bundled catalog into an empty database. It is
// meant to run inside a transaction.
func CreateDefaultData(ctx context.Context, db Execer, catalog *models.Catalog, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default catalog data...")

	var inserted int64
	for _, stmt := range Statements(catalog) {
		query, args, err := stmt.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build seed query: %w", err)
		}
		tag, err := db.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	lgr.Info().Int64("rows", inserted).Msg("Default catalog data ensured")
	return nil
}
