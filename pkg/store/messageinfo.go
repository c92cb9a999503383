package store

import (
	"fmt"
)

// NoExpiration marks a message that never expires.
const NoExpiration int64 = -1

// MessageInfo describes one stored object: its blob id, its size in the
// store and its lifecycle state. It carries no object data.
type MessageInfo struct {
	ID        BlobID
	Size      int64
	ExpiresAt int64
	Deleted   bool

	// CRC is the integrity checksum of the stored object. It is
	// optional and only carried by list encoding version 2 and above.
	CRC *uint32
}

// IsExpired reports whether the message is past its expiry time.
func (m MessageInfo) IsExpired(nowMs int64) bool {
	return m.ExpiresAt != NoExpiration && m.ExpiresAt < nowMs
}

// String returns a human readable form of the message info.
func (m MessageInfo) String() string {
	return fmt.Sprintf("MessageInfo[%s size=%d expiresAt=%d deleted=%t]",
		m.ID.String(), m.Size, m.ExpiresAt, m.Deleted)
}
