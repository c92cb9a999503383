package commons

import (
	"testing"
)

func TestErrorCodeOrdinals(t *testing.T) {
	// The wire format depends on these ordinals staying fixed.
	testCases := []struct {
		code    ServerErrorCode
		ordinal int16
		name    string
	}{
		{NoError, 0, "NoError"},
		{IOError, 1, "IOError"},
		{BlobNotFound, 2, "BlobNotFound"},
		{BlobDeleted, 3, "BlobDeleted"},
		{BlobExpired, 4, "BlobExpired"},
		{DataCorrupt, 5, "DataCorrupt"},
		{PartitionUnknown, 6, "PartitionUnknown"},
		{PartitionReadOnly, 7, "PartitionReadOnly"},
		{DiskUnavailable, 8, "DiskUnavailable"},
		{ReplicaUnavailable, 9, "ReplicaUnavailable"},
	}

	for _, c := range testCases {
		if c.code.Ordinal() != c.ordinal {
			t.Errorf("expected ordinal of %s to be %d: got %d", c.name, c.ordinal, c.code.Ordinal())
		}
		if c.code.String() != c.name {
			t.Errorf("expected name of ordinal %d to be %s: got %s", c.ordinal, c.name, c.code.String())
		}

		code, err := ErrorCodeFromOrdinal(c.ordinal)
		if err != nil {
			t.Errorf("unexpected error for ordinal %d: %v", c.ordinal, err)
		}
		if code != c.code {
			t.Errorf("expected ordinal %d to map to %s: got %s", c.ordinal, c.name, code.String())
		}
	}
}

func TestErrorCodeFromOrdinalOutOfRange(t *testing.T) {
	for _, ordinal := range []int16{-1, 10, 100, 9999} {
		if _, err := ErrorCodeFromOrdinal(ordinal); err == nil {
			t.Errorf("expected error for out of range ordinal %d: got nil", ordinal)
		}
	}
}
