package license

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/storage"
)

const deviceFileName = "device.json"

type deviceRecord struct {
	DeviceID string `json:"device_id"`
}

// loadDeviceID returns the stable identifier this installation sends
// to the license server, generating and persisting one on first run.
func loadDeviceID(files *storage.FileStore, log *logger.Logger) (string, error) {
	var rec deviceRecord
	err := files.Load(deviceFileName, &rec)
	if err == nil && rec.DeviceID != "" {
		return rec.DeviceID, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	rec.DeviceID = newDeviceID()
	if err := files.Save(deviceFileName, rec); err != nil {
		return "", fmt.Errorf("persisting device id: %w", err)
	}
	log.Debug("generated device id %s...", rec.DeviceID[:8])
	return rec.DeviceID, nil
}

// newDeviceID hashes host characteristics together with a random
// install id. The random part keeps ids unique across identical
// machines; persistence keeps them stable across runs.
func newDeviceID() string {
	host, _ := os.Hostname()
	parts := []string{host, runtime.GOARCH, runtime.GOOS, uuid.NewString()}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:32]
}
