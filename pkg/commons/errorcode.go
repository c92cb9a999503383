package commons

import (
	"github.com/pkg/errors"
)

// ServerErrorCode is the error condition a storage server reports for
// one partition of a get request. The wire format carries the ordinal
// value, so the order of this enumeration is frozen: new codes are
// appended, never inserted.
type ServerErrorCode int16

const (
	// NoError means the partition request succeeded.
	NoError ServerErrorCode = iota
	// IOError means the server failed to read the underlying store.
	IOError
	// BlobNotFound means the requested blob does not exist in the partition.
	BlobNotFound
	// BlobDeleted means the requested blob has been deleted.
	BlobDeleted
	// BlobExpired means the requested blob is past its expiry time.
	BlobExpired
	// DataCorrupt means the stored data failed an integrity check.
	DataCorrupt
	// PartitionUnknown means the server does not host the partition.
	PartitionUnknown
	// PartitionReadOnly means the partition accepts no more writes.
	PartitionReadOnly
	// DiskUnavailable means the disk backing the partition is down.
	DiskUnavailable
	// ReplicaUnavailable means the replica is temporarily not serving.
	ReplicaUnavailable

	// numErrorCodes marks the end of the enumeration.
	numErrorCodes
)

// String returns a human readable name of the error code.
func (c ServerErrorCode) String() string {
	switch c {
	case NoError:
		return "NoError"
	case IOError:
		return "IOError"
	case BlobNotFound:
		return "BlobNotFound"
	case BlobDeleted:
		return "BlobDeleted"
	case BlobExpired:
		return "BlobExpired"
	case DataCorrupt:
		return "DataCorrupt"
	case PartitionUnknown:
		return "PartitionUnknown"
	case PartitionReadOnly:
		return "PartitionReadOnly"
	case DiskUnavailable:
		return "DiskUnavailable"
	case ReplicaUnavailable:
		return "ReplicaUnavailable"
	default:
		return "Unknown"
	}
}

// Ordinal returns the wire value of the error code.
func (c ServerErrorCode) Ordinal() int16 {
	return int16(c)
}

// ErrorCodeFromOrdinal converts a wire ordinal back to a server error
// code. Ordinals outside the known enumeration are rejected rather than
// clamped, so a decoder can surface corrupt or mismatched data.
func ErrorCodeFromOrdinal(ordinal int16) (ServerErrorCode, error) {
	if ordinal < 0 || ordinal >= int16(numErrorCodes) {
		return NoError, errors.Errorf("unknown server error code ordinal: %d", ordinal)
	}
	return ServerErrorCode(ordinal), nil
}
