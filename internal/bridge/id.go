package bridge

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newExchangeID creates a short random hex ID used to correlate log
// lines and events of one exchange.
func newExchangeID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// Fallback -- should never happen.
		return fmt.Sprintf("ex-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
