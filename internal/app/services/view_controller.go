package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
	"github.com/wbvaa/portal/internal/pkg/validation"
)

// DefaultLoadingDelay is how long the loading indicator shows after a navigation.
const DefaultLoadingDelay = 600 * time.Millisecond

// State is a point-in-time copy of a view root's session state.
type State struct {
	Language   models.Language `json:"language"`
	Dark       bool            `json:"dark"`
	View       models.ViewID   `json:"view"`
	DistrictID string          `json:"districtId,omitempty"`
	Search     string          `json:"search"`
	MenuOpen   bool            `json:"menuOpen"`
	Loading    bool            `json:"loading"`
	SlideIndex int             `json:"slideIndex"`
}

// ThemeClass is the class the document root carries for this state.
func (s State) ThemeClass() string {
	if s.Dark {
		return "dark"
	}
	return ""
}

// ViewController owns the navigation state of one view root.
type ViewController struct {
	catalog      *models.Catalog
	loadingDelay time.Duration
	publish      func(models.Event)

	mu           sync.Mutex
	state        State
	generation   uint64
	loadingTimer *time.Timer
	closed       bool
}

// NewViewController creates a controller on the home view. publish receives
// every state change and must not block.
func NewViewController(catalog *models.Catalog, lang models.Language, loadingDelay time.Duration, publish func(models.Event)) *ViewController {
	if !lang.Valid() {
		lang = models.LanguageEnglish
	}
	if loadingDelay <= 0 {
		loadingDelay = DefaultLoadingDelay
	}
	if publish == nil {
		publish = func(models.Event) {}
	}
	return &ViewController{
		catalog:      catalog,
		loadingDelay: loadingDelay,
		publish:      publish,
		state: State{
			Language: lang,
			View:     models.ViewHome,
		},
	}
}

func (c *ViewController) emit(t models.EventType) {
	c.publish(models.Event{
		Type:      t,
		Loading:   c.state.Loading,
		Dark:      c.state.Dark,
		Timestamp: time.Now(),
	})
}

func (c *ViewController) checkOpen() error {
	if c.closed {
		return fmt.Errorf("%w: view root unmounted", apperrors.ErrSessionNotFound)
	}
	return nil
}

// Select switches to view, closes the mobile menu and shows the loading
// indicator for the loading delay. Only the latest navigation clears it.
func (c *ViewController) Select(view models.ViewID) error {
	if !c.catalog.HasView(view) {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownView, view)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return err
	}

	c.state.View = view
	c.state.MenuOpen = false
	c.state.Loading = true

	c.generation++
	gen := c.generation
	if c.loadingTimer != nil {
		c.loadingTimer.Stop()
	}
	c.loadingTimer = time.AfterFunc(c.loadingDelay, func() { c.finishLoading(gen) })

	c.emit(models.EventLoading)
	return nil
}

func (c *ViewController) finishLoading(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation {
		return
	}
	c.loadingTimer = nil
	c.state.Loading = false
	c.emit(models.EventLoading)
}

// GoHome returns to the home view without the loading indicator.
func (c *ViewController) GoHome() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return err
	}

	c.state.View = models.ViewHome
	c.emit(models.EventState)
	return nil
}

// SelectDistrict selects a district and switches to the districts view.
func (c *ViewController) SelectDistrict(id string) error {
	if _, ok := c.catalog.DistrictByID(id); !ok {
		return apperrors.NewDistrictNotFoundError(id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return err
	}

	c.state.DistrictID = id
	c.state.View = models.ViewDistricts
	c.emit(models.EventState)
	return nil
}

// SetLanguage sets the display language.
func (c *ViewController) SetLanguage(lang models.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedLanguage, lang)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return err
	}

	c.state.Language = lang
	c.emit(models.EventState)
	return nil
}

// ToggleLanguage switches between the two languages and returns the new one.
func (c *ViewController) ToggleLanguage() (models.Language, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return "", err
	}

	c.state.Language = c.state.Language.Other()
	c.emit(models.EventState)
	return c.state.Language, nil
}

// SetTheme sets the dark theme flag. The theme marker is republished when it changes.
func (c *ViewController) SetTheme(dark bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return err
	}

	if c.state.Dark != dark {
		c.state.Dark = dark
		c.emit(models.EventTheme)
	}
	return nil
}

// ToggleTheme flips the dark theme flag and returns the new value.
func (c *ViewController) ToggleTheme() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return false, err
	}

	c.state.Dark = !c.state.Dark
	c.emit(models.EventTheme)
	return c.state.Dark, nil
}

// SetSearch sets the record search text. Empty clears the search.
func (c *ViewController) SetSearch(query string) error {
	if !validation.IsSearchQuery(query) {
		return fmt.Errorf("%w: search must be at most %d characters", apperrors.ErrValidationFailed, validation.SearchMaxLength)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return err
	}

	c.state.Search = query
	return nil
}

// ToggleMenu opens or closes the mobile menu and returns the new value.
func (c *ViewController) ToggleMenu() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkOpen(); err != nil {
		return false, err
	}

	c.state.MenuOpen = !c.state.MenuOpen
	return c.state.MenuOpen, nil
}

// Snapshot returns a copy of the current state. SlideIndex is left for the
// owning root to fill.
func (c *ViewController) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops the pending loading timer. Later mutations fail.
func (c *ViewController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.loadingTimer != nil {
		c.loadingTimer.Stop()
		c.loadingTimer = nil
	}
}
