package license

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/storage"
)

const licenseFileName = "license.json"

// Manager owns the trial and activation state. All checks go through
// Validate, which consults the server only for paid licenses and
// caches confirmed outcomes.
type Manager struct {
	mu        sync.Mutex
	info      Info
	status    Status
	deviceID  string
	serverURL string
	client    *Client
	cache     *validationCache
	files     *storage.FileStore
	log       *logger.Logger
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClient replaces the license server client.
func WithClient(c *Client) Option {
	return func(m *Manager) { m.client = c }
}

// WithCacheTTL overrides how long confirmed validations are reused.
func WithCacheTTL(d time.Duration) Option {
	return func(m *Manager) {
		cache, err := newValidationCache(d)
		if err == nil {
			m.cache = cache
		}
	}
}

// NewManager loads the persisted license state and prepares the
// server client. A missing license file is a fresh install, not an
// error.
func NewManager(serverURL string, files *storage.FileStore, log *logger.Logger, opts ...Option) (*Manager, error) {
	deviceID, err := loadDeviceID(files, log)
	if err != nil {
		return nil, fmt.Errorf("device id: %w", err)
	}

	cache, err := newValidationCache(cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("validation cache: %w", err)
	}

	m := &Manager{
		status:    StatusNoLicense,
		deviceID:  deviceID,
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    NewClient(serverURL, log),
		cache:     cache,
		files:     files,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := files.Load(licenseFileName, &m.info); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return m, nil
}

// StartTrial begins the 30-day trial. When the server is unreachable
// the trial starts offline; this call fails only if the state cannot
// be persisted.
func (m *Manager) StartTrial(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	licenseType := TypeTrial
	if err := m.client.StartTrial(ctx, email, m.deviceID); err != nil {
		m.log.Warn("license server unreachable, starting offline trial: %v", err)
		licenseType = TypeTrialOffline
	}

	start := m.now()
	m.info = Info{
		Email:       email,
		TrialStart:  &start,
		LicenseType: licenseType,
	}
	if err := m.files.Save(licenseFileName, m.info); err != nil {
		return fmt.Errorf("saving trial state: %w", err)
	}

	m.status = StatusTrial
	m.cache.clear()
	m.log.Info("trial started (%s, %d days)", licenseType, TrialDays)
	return nil
}

// Activate binds a license key to this device. The returned error
// carries the server's message on rejection.
func (m *Manager) Activate(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.client.Activate(ctx, key, m.deviceID, m.info.Email)
	if err != nil {
		return err
	}

	licenseType := res.LicenseType
	if licenseType == "" {
		licenseType = TypePro
	}
	activated := m.now()
	m.info.LicenseKey = key
	m.info.LicenseType = licenseType
	m.info.ExpiryDate = parseExpiry(res.ExpiryDate)
	m.info.ActivatedAt = &activated
	if err := m.files.Save(licenseFileName, m.info); err != nil {
		return fmt.Errorf("saving license: %w", err)
	}

	m.status = StatusValid
	m.cache.put(StatusValid)
	m.log.Info("license activated (%s)", licenseType)
	return nil
}

// Validate computes the current status. Trials are judged locally;
// paid licenses are checked against the server with a cache in front.
func (m *Manager) Validate(ctx context.Context) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validateLocked(ctx, false)
}

// Refresh revalidates against the server, bypassing the cache.
func (m *Manager) Refresh(ctx context.Context) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validateLocked(ctx, true)
}

func (m *Manager) validateLocked(ctx context.Context, force bool) Status {
	switch {
	case m.info.empty():
		m.status = StatusNoLicense
	case m.info.isTrial():
		if m.daysLeftLocked() > 0 {
			m.status = StatusTrial
		} else {
			m.status = StatusTrialExpired
		}
	case m.info.isPaid():
		m.status = m.validatePaid(ctx, force)
	default:
		m.status = StatusNoLicense
	}
	return m.status
}

func (m *Manager) validatePaid(ctx context.Context, force bool) Status {
	if !force {
		if cached, ok := m.cache.get(); ok {
			return cached
		}
	}

	res, err := m.client.Validate(ctx, m.info.LicenseKey, m.deviceID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return StatusOffline
		}
		// No server at all. Trust the stored expiry while it lasts.
		if m.info.ExpiryDate != nil && m.info.ExpiryDate.Before(m.now()) {
			return StatusExpired
		}
		return StatusOffline
	}

	if !res.Valid {
		m.cache.put(StatusInvalid)
		return StatusInvalid
	}

	if expiry := parseExpiry(res.ExpiryDate); expiry != nil {
		m.info.ExpiryDate = expiry
		if err := m.files.Save(licenseFileName, m.info); err != nil {
			m.log.Warn("saving refreshed expiry: %v", err)
		}
	}
	if m.info.ExpiryDate != nil && m.info.ExpiryDate.Before(m.now()) {
		m.cache.put(StatusExpired)
		return StatusExpired
	}
	m.cache.put(StatusValid)
	return StatusValid
}

// CanUse reports whether the app should run: a valid key, an active
// trial, or an unreachable server during a paid period all count.
func (m *Manager) CanUse(ctx context.Context) bool {
	switch m.Validate(ctx) {
	case StatusValid, StatusTrial, StatusOffline:
		return true
	}
	return false
}

// DaysLeft returns the remaining trial days, clamped at zero. Before
// any trial has started it reports the full period.
func (m *Manager) DaysLeft() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.daysLeftLocked()
}

func (m *Manager) daysLeftLocked() int {
	if m.info.TrialStart == nil {
		return TrialDays
	}
	end := m.info.TrialStart.AddDate(0, 0, TrialDays)
	remaining := int(end.Sub(m.now()).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PurchaseURL is the storefront address for this user.
func (m *Manager) PurchaseURL() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	base := strings.Replace(m.serverURL, "/api", "", 1)
	u := base + "/purchase"
	if m.info.Email != "" {
		u += "?email=" + url.QueryEscape(m.info.Email)
	}
	return u
}

// Clear removes the stored license, returning to a fresh-install
// state.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.files.Remove(licenseFileName); err != nil {
		return err
	}
	m.info = Info{}
	m.status = StatusNoLicense
	m.cache.clear()
	m.log.Info("license cleared")
	return nil
}

// Status returns the last computed status without contacting the
// server.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// LicenseInfo returns a copy of the persisted state.
func (m *Manager) LicenseInfo() Info {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info
}

// DeviceID returns this installation's identifier.
func (m *Manager) DeviceID() string {
	return m.deviceID
}
