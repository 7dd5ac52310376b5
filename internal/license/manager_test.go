package license

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/storage"
)

func newTestManager(t *testing.T, serverURL string) *Manager {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	files := storage.NewFileStore(t.TempDir(), log)
	m, err := NewManager(serverURL, files, log)
	require.NoError(t, err)
	return m
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestStartTrialOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/license/trial", r.URL.Path)
		var req trialRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jan@example.com", req.Email)
		assert.NotEmpty(t, req.DeviceID)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := newTestManager(t, srv.URL)
	start := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	m.now = fixedClock(start)

	require.NoError(t, m.StartTrial(context.Background(), "jan@example.com"))

	info := m.LicenseInfo()
	assert.Equal(t, TypeTrial, info.LicenseType)
	assert.Equal(t, "jan@example.com", info.Email)
	require.NotNil(t, info.TrialStart)
	assert.Equal(t, StatusTrial, m.Validate(context.Background()))

	m.now = fixedClock(start.Add(10 * 24 * time.Hour))
	assert.Equal(t, 20, m.DaysLeft())
}

func TestStartTrialOffline(t *testing.T) {
	m := newTestManager(t, "http://127.0.0.1:1")
	require.NoError(t, m.StartTrial(context.Background(), "jan@example.com"))

	assert.Equal(t, TypeTrialOffline, m.LicenseInfo().LicenseType)
	assert.Equal(t, StatusTrial, m.Validate(context.Background()))
	assert.True(t, m.CanUse(context.Background()))
}

func TestValidateNoLicense(t *testing.T) {
	m := newTestManager(t, "http://127.0.0.1:1")
	assert.Equal(t, StatusNoLicense, m.Validate(context.Background()))
	assert.False(t, m.CanUse(context.Background()))
	assert.Equal(t, TrialDays, m.DaysLeft())
}

func TestTrialExpires(t *testing.T) {
	m := newTestManager(t, "http://127.0.0.1:1")
	start := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	m.now = fixedClock(start)
	require.NoError(t, m.StartTrial(context.Background(), ""))

	m.now = fixedClock(start.Add(31 * 24 * time.Hour))
	assert.Equal(t, StatusTrialExpired, m.Validate(context.Background()))
	assert.Equal(t, 0, m.DaysLeft())
	assert.False(t, m.CanUse(context.Background()))
}

func TestActivate(t *testing.T) {
	var validateHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/license/activate":
			var req activateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "VOICE-1234", req.LicenseKey)
			json.NewEncoder(w).Encode(ActivationResult{
				LicenseType: TypePro,
				ExpiryDate:  "2099-01-02T00:00:00Z",
			})
		case "/license/validate":
			validateHits.Add(1)
			json.NewEncoder(w).Encode(ValidationResult{Valid: true})
		}
	}))
	defer srv.Close()

	m := newTestManager(t, srv.URL)
	require.NoError(t, m.Activate(context.Background(), "VOICE-1234"))

	info := m.LicenseInfo()
	assert.Equal(t, TypePro, info.LicenseType)
	assert.Equal(t, "VOICE-1234", info.LicenseKey)
	require.NotNil(t, info.ExpiryDate)
	assert.Equal(t, 2099, info.ExpiryDate.Year())
	require.NotNil(t, info.ActivatedAt)

	// Activation primes the cache, so no validate round trip happens.
	assert.Equal(t, StatusValid, m.Validate(context.Background()))
	assert.Equal(t, int32(0), validateHits.Load())
}

func TestActivateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "key already in use"})
	}))
	defer srv.Close()

	m := newTestManager(t, srv.URL)
	err := m.Activate(context.Background(), "VOICE-1234")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "key already in use")
	assert.Equal(t, StatusNoLicense, m.Validate(context.Background()))
}

func TestValidatePaid(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    Status
	}{
		{
			name: "valid with future expiry",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(ValidationResult{Valid: true, ExpiryDate: "2099-01-02T00:00:00Z"})
			},
			want: StatusValid,
		},
		{
			name: "rejected by server",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(ValidationResult{Valid: false})
			},
			want: StatusInvalid,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: StatusOffline,
		},
		{
			name: "valid but expired",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(ValidationResult{Valid: true, ExpiryDate: "2020-01-02T00:00:00Z"})
			},
			want: StatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			m := newTestManager(t, srv.URL)
			m.info = Info{Email: "jan@example.com", LicenseKey: "VOICE-1234", LicenseType: TypePro}

			assert.Equal(t, tt.want, m.Refresh(context.Background()))
		})
	}
}

func TestValidatePaidNetworkDown(t *testing.T) {
	future := time.Now().Add(30 * 24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name   string
		expiry *time.Time
		want   Status
	}{
		{"expiry still ahead", &future, StatusOffline},
		{"expiry passed", &past, StatusExpired},
		{"no stored expiry", nil, StatusOffline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t, "http://127.0.0.1:1")
			m.info = Info{LicenseKey: "VOICE-1234", LicenseType: TypePro, ExpiryDate: tt.expiry}

			assert.Equal(t, tt.want, m.Refresh(context.Background()))
		})
	}
}

func TestValidateUsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(ValidationResult{Valid: true})
	}))
	defer srv.Close()

	m := newTestManager(t, srv.URL)
	m.info = Info{LicenseKey: "VOICE-1234", LicenseType: TypePro}

	assert.Equal(t, StatusValid, m.Validate(context.Background()))
	assert.Equal(t, StatusValid, m.Validate(context.Background()))
	assert.Equal(t, int32(1), hits.Load())

	assert.Equal(t, StatusValid, m.Refresh(context.Background()))
	assert.Equal(t, int32(2), hits.Load())
}

func TestPurchaseURL(t *testing.T) {
	m := newTestManager(t, "https://license.example.com/api")
	assert.Equal(t, "https://license.example.com/purchase", m.PurchaseURL())

	m.info.Email = "jan+voice@example.com"
	assert.Equal(t, "https://license.example.com/purchase?email=jan%2Bvoice%40example.com", m.PurchaseURL())
}

func TestClear(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	files := storage.NewFileStore(t.TempDir(), log)
	m, err := NewManager("http://127.0.0.1:1", files, log)
	require.NoError(t, err)

	require.NoError(t, m.StartTrial(context.Background(), "jan@example.com"))
	require.NoError(t, m.Clear())
	assert.Equal(t, StatusNoLicense, m.Validate(context.Background()))

	// The cleared state must survive a reload.
	reloaded, err := NewManager("http://127.0.0.1:1", files, log)
	require.NoError(t, err)
	assert.Equal(t, StatusNoLicense, reloaded.Validate(context.Background()))
}

func TestTrialStateSurvivesReload(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	files := storage.NewFileStore(t.TempDir(), log)
	m, err := NewManager("http://127.0.0.1:1", files, log)
	require.NoError(t, err)
	require.NoError(t, m.StartTrial(context.Background(), "jan@example.com"))

	reloaded, err := NewManager("http://127.0.0.1:1", files, log)
	require.NoError(t, err)
	assert.Equal(t, StatusTrial, reloaded.Validate(context.Background()))
	assert.Equal(t, "jan@example.com", reloaded.LicenseInfo().Email)
}

func TestParseExpiry(t *testing.T) {
	require.Nil(t, parseExpiry(""))
	require.Nil(t, parseExpiry("not a date"))

	rfc := parseExpiry("2099-01-02T15:04:05Z")
	require.NotNil(t, rfc)
	assert.Equal(t, 2099, rfc.Year())

	bare := parseExpiry("2099-01-02")
	require.NotNil(t, bare)
	assert.Equal(t, time.January, bare.Month())
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>nginx</html>")
	}))
	defer srv.Close()

	log := logger.New(logger.LevelOff, nil)
	c := NewClient(srv.URL, log)
	err := c.StartTrial(context.Background(), "", "dev")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}
