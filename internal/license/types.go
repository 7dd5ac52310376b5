// Package license gates the application behind a 30-day trial or a
// paid key validated against the license server. Network failures
// degrade to offline statuses so a flaky connection never locks a
// paying user out.
package license

import "time"

// Status is the outcome of a license check.
type Status string

const (
	StatusValid        Status = "valid"
	StatusTrial        Status = "trial"
	StatusTrialExpired Status = "trial_expired"
	StatusExpired      Status = "expired"
	StatusInvalid      Status = "invalid"
	StatusNoLicense    Status = "no_license"
	StatusOffline      Status = "offline"
)

// TrialDays is the length of the free trial.
const TrialDays = 30

// License types stored in license.json. Offline trials were started
// without server confirmation and behave like regular trials.
const (
	TypeTrial        = "trial"
	TypeTrialOffline = "trial_offline"
	TypePro          = "pro"
	TypeLifetime     = "lifetime"
)

// Info is the persisted license state.
type Info struct {
	Email       string     `json:"email,omitempty"`
	TrialStart  *time.Time `json:"trial_start,omitempty"`
	LicenseType string     `json:"license_type,omitempty"`
	LicenseKey  string     `json:"license_key,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}

func (i Info) empty() bool {
	return i.Email == "" && i.TrialStart == nil && i.LicenseType == "" && i.LicenseKey == ""
}

func (i Info) isTrial() bool {
	return i.LicenseType == TypeTrial || i.LicenseType == TypeTrialOffline
}

func (i Info) isPaid() bool {
	return i.LicenseType == TypePro || i.LicenseType == TypeLifetime
}

// parseExpiry accepts the server's expiry formats: RFC 3339 or a bare
// date. Returns nil for empty or unparseable values.
func parseExpiry(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
