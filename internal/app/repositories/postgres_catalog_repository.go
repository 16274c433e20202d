package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/dberrors"
	"github.com/wbvaa/portal/internal/pkg/logger"
)

// Querier is the subset of pgxpool.Pool the catalog reader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresCatalogRepository reads the catalog from the tables created by the
// catalog migrations.
type PostgresCatalogRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
func NewPostgresCatalogRepository(db Querier) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Load reads every catalog table and validates the result.
func (r *PostgresCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	catalog := &models.Catalog{Dictionary: models.Dictionary{}}

	steps := []struct {
		name string
		fn   func(context.Context, *models.Catalog) error
	}{
		{"nav_items", r.loadNavItems},
		{"districts", r.loadDistricts},
		{"district_officers", r.loadOfficers},
		{"notices", r.loadNotices},
		{"service_records", r.loadServiceRecords},
		{"gallery_images", r.loadGalleryImages},
		{"hero_slides", r.loadHeroSlides},
		{"publications", r.loadPublications},
		{"translations", r.loadTranslations},
	}
	for _, step := range steps {
		if err := step.fn(ctx, catalog); err != nil {
			logger.Error().Err(err).Str("table", step.name).Msg("Error loading catalog table")
			if dberrors.IsSchemaMissing(err) {
				return nil, fmt.Errorf("catalog table %s is missing, apply the migrations first: %w", step.name, err)
			}
			return nil, fmt.Errorf("error loading %s: %w", step.name, err)
		}
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (r *PostgresCatalogRepository) query(ctx context.Context, b squirrel.SelectBuilder, scan func(pgx.Rows) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
	}
	return rows.Err()
}

func (r *PostgresCatalogRepository) navItemsQuery() squirrel.SelectBuilder {
	return r.sb.Select("id", "label_en", "label_bn", "icon").From("nav_items").OrderBy("position ASC")
}

func (r *PostgresCatalogRepository) loadNavItems(ctx context.Context, c *models.Catalog) error {
	return r.query(ctx, r.navItemsQuery(), func(rows pgx.Rows) error {
		var n models.NavItem
		var id string
		if err := rows.Scan(&id, &n.LabelEn, &n.LabelBn, &n.Icon); err != nil {
			return err
		}
		n.ID = models.ViewID(id)
		c.NavItems = append(c.NavItems, n)
		return nil
	})
}

func (r *PostgresCatalogRepository) districtsQuery() squirrel.SelectBuilder {
	return r.sb.Select("id", "name", "member_count").From("districts").OrderBy("position ASC")
}

func (r *PostgresCatalogRepository) loadDistricts(ctx context.Context, c *models.Catalog) error {
	return r.query(ctx, r.districtsQuery(), func(rows pgx.Rows) error {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Name, &d.MemberCount); err != nil {
			return err
		}
		c.Districts = append(c.Districts, d)
		return nil
	})
}

func (r *PostgresCatalogRepository) officersQuery() squirrel.SelectBuilder {
	return r.sb.Select("district_id", "role", "name", "phone").
		From("district_officers").
		OrderBy("district_id ASC", "position ASC")
}

// loadOfficers attaches officers to the districts loaded before it.
func (r *PostgresCatalogRepository) loadOfficers(ctx context.Context, c *models.Catalog) error {
	return r.query(ctx, r.officersQuery(), func(rows pgx.Rows) error {
		var districtID string
		var o models.Officer
		var phone sql.NullString
		if err := rows.Scan(&districtID, &o.Role, &o.Name, &phone); err != nil {
			return err
		}
		o.Phone = phone.String
		d, ok := c.DistrictByID(districtID)
		if !ok {
			return fmt.Errorf("officer %q references unknown district %q", o.Name, districtID)
		}
		d.Officers = append(d.Officers, o)
		return nil
	})
}

func (r *PostgresCatalogRepository) noticesQuery() squirrel.SelectBuilder {
	return r.sb.Select("id", "title", "date", "type", "is_new").From("notices").OrderBy("position ASC")
}

func (r *PostgresCatalogRepository) loadNotices(ctx context.Context, c *models.Catalog) error {
	return r.query(ctx, r.noticesQuery(), func(rows pgx.Rows) error {
		var n models.Notice
		var noticeType string
		if err := rows.Scan(&n.ID, &n.Title, &n.Date, &noticeType, &n.IsNew); err != nil {
			return err
		}
		n.Type = models.NoticeType(noticeType)
		c.Notices = append(c.Notices, n)
		return nil
	})
}

func (r *PostgresCatalogRepository) serviceRecordsQuery() squirrel.SelectBuilder {
	return r.sb.Select("id", "title", "date", "category").From("service_records").OrderBy("position ASC")
}

func (r *PostgresCatalogRepository) loadServiceRecords(ctx context.Context, c *models.Catalog) error {
	return r.query(ctx, r.serviceRecordsQuery(), func(rows pgx.Rows) error {
		var s models.ServiceRecord
		var category string
		if err := rows.Scan(&s.ID, &s.Title, &s.Date, &category); err != nil {
			return err
		}
		s.Category = models.Category(category)
		c.ServiceRecords = append(c.ServiceRecords, s)
		return nil
	})
}

func (r *PostgresCatalogRepository) galleryImagesQuery() squirrel.SelectBuilder {
	return r.sb.Select("id", "drive_id", "caption", "date").From("gallery_images").OrderBy("position ASC")
}

func (r *PostgresCatalogRepository) loadGalleryImages(ctx context.Context, c *models.Catalog) error {
	return r.query(ctx, r.galleryImagesQuery(), func(rows pgx.Rows) error {
		var g models.GalleryImage
		var date sql.NullString
		if err := rows.Scan(&g.ID, &g.DriveID, &g.Caption, &date); err != nil {
			return err
		}
		g.Date = date.String
		c.GalleryImages = append(c.GalleryImages, g)
		return nil
	})
}

func (r *PostgresCatalogRepository) loadHeroSlides(ctx context.Context, c *models.Catalog) error {
	q := r.sb.Select("url").From("hero_slides").OrderBy("position ASC")
	return r.query(ctx, q, func(rows pgx.Rows) error {
		var url string
		if err := rows.Scan(&url); err != nil {
			return err
		}
		c.HeroSlides = append(c.HeroSlides, url)
		return nil
	})
}

func (r *PostgresCatalogRepository) loadPublications(ctx context.Context, c *models.Catalog) error {
	q := r.sb.Select("title", "subtitle", "kind").From("publications").OrderBy("position ASC")
	return r.query(ctx, q, func(rows pgx.Rows) error {
		var p models.Publication
		if err := rows.Scan(&p.Title, &p.Subtitle, &p.Kind); err != nil {
			return err
		}
		c.Publications = append(c.Publications, p)
		return nil
	})
}

func (r *PostgresCatalogRepository) loadTranslations(ctx context.Context, c *models.Catalog) error {
	q := r.sb.Select("key", "en", "bn").From("translations")
	return r.query(ctx, q, func(rows pgx.Rows) error {
		var key string
		var e models.TranslationEntry
		if err := rows.Scan(&key, &e.En, &e.Bn); err != nil {
			return err
		}
		c.Dictionary[key] = e
		return nil
	})
}
