package redisx

import "time"

const (
	// Session login: session:{token} -> {"user_id": "...", "email": "..."}
	KeySession = "session:%s"

	// Dedup event change feed: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Hash counter per event_type yang sudah diproses audit.
	KeyAuditCounts = "audit:counts"
)

var (
	TTLSession = 24 * time.Hour
	TTLDedup   = 48 * time.Hour
)
