package internal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateRequestID creates a unique ID for one in-flight translation request
// Format: epochMillis_uuid[:8]
func GenerateRequestID() string {
	epochMillis := time.Now().UnixNano() / 1000000
	return fmt.Sprintf("%d_%s", epochMillis, uuid.NewString()[:8])
}
