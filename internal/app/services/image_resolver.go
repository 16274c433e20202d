package services

import (
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
)

// DefaultExportPath is the Google Drive direct view path; the asset id is appended.
const DefaultExportPath = "/uc?export=view&id="

// ImageURLs configures where gallery images are loaded from.
type ImageURLs struct {
	AssetHost   string
	ExportPath  string
	FallbackURL string
}

// PrimaryURL returns the direct export URL of an asset on the image host.
func (u ImageURLs) PrimaryURL(driveID string) string {
	path := u.ExportPath
	if path == "" {
		path = DefaultExportPath
	}
	return strings.TrimRight(u.AssetHost, "/") + path + url.QueryEscape(driveID)
}

// ResolvedImage is what a gallery tile renders.
type ResolvedImage struct {
	ID          string `json:"id"`
	Caption     string `json:"caption"`
	Date        string `json:"date,omitempty"`
	PrimaryURL  string `json:"primaryUrl"`
	FallbackURL string `json:"fallbackUrl"`
	Failed      bool   `json:"failed"`
}

// Src is the URL the tile should show right now.
func (r ResolvedImage) Src() string {
	if r.Failed {
		return r.FallbackURL
	}
	return r.PrimaryURL
}

// ImageResolver tracks load failures of the gallery images of one view root.
// Each image has its own slot; a slot goes from ok to failed at most once and
// never back.
type ImageResolver struct {
	urls   ImageURLs
	images []models.GalleryImage
	index  map[string]int
	failed []atomic.Bool
}

// NewImageResolver creates a resolver with every image in the ok state.
func NewImageResolver(images []models.GalleryImage, urls ImageURLs) *ImageResolver {
	index := make(map[string]int, len(images))
	for i, img := range images {
		index[img.ID] = i
	}
	return &ImageResolver{
		urls:   urls,
		images: images,
		index:  index,
		failed: make([]atomic.Bool, len(images)),
	}
}

func (r *ImageResolver) slot(id string) (int, error) {
	i, ok := r.index[id]
	if !ok {
		return 0, apperrors.NewImageNotFoundError(id)
	}
	return i, nil
}

// MarkFailed records a load failure of image id. It reports whether this call
// changed the state; later calls are no-ops.
func (r *ImageResolver) MarkFailed(id string) (bool, error) {
	i, err := r.slot(id)
	if err != nil {
		return false, err
	}
	return r.failed[i].CompareAndSwap(false, true), nil
}

// Failed reports whether image id has failed to load.
func (r *ImageResolver) Failed(id string) (bool, error) {
	i, err := r.slot(id)
	if err != nil {
		return false, err
	}
	return r.failed[i].Load(), nil
}

// Resolve returns the render model of one image.
func (r *ImageResolver) Resolve(img models.GalleryImage) ResolvedImage {
	failed := false
	if i, ok := r.index[img.ID]; ok {
		failed = r.failed[i].Load()
	}
	return ResolvedImage{
		ID:          img.ID,
		Caption:     img.Caption,
		Date:        img.Date,
		PrimaryURL:  r.urls.PrimaryURL(img.DriveID),
		FallbackURL: r.urls.FallbackURL,
		Failed:      failed,
	}
}

// Get resolves image id.
func (r *ImageResolver) Get(id string) (ResolvedImage, error) {
	i, err := r.slot(id)
	if err != nil {
		return ResolvedImage{}, err
	}
	return r.Resolve(r.images[i]), nil
}

// ResolveAll resolves the whole gallery in catalog order.
func (r *ImageResolver) ResolveAll() []ResolvedImage {
	out := make([]ResolvedImage, len(r.images))
	for i, img := range r.images {
		out[i] = r.Resolve(img)
	}
	return out
}
