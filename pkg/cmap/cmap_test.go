package cmap

import (
	"bytes"
	"testing"
)

func TestPartitionRoundTrip(t *testing.T) {
	m := New(1, 7, 42)

	for _, id := range []int64{1, 7, 42} {
		p := m.GetPartition(id)
		if p == nil {
			t.Fatalf("expected partition %d in the map: got nil", id)
		}

		got, err := m.GetPartitionIDFromStream(bytes.NewReader(p.Bytes()))
		if err != nil {
			t.Fatalf("unexpected error reading partition %d: %v", id, err)
		}
		if got.ID() != id {
			t.Errorf("expected partition id %d: got %d", id, got.ID())
		}
		if !bytes.Equal(got.Bytes(), p.Bytes()) {
			t.Errorf("expected identical partition bytes for %d", id)
		}
	}
}

func TestUnknownPartition(t *testing.T) {
	m := New(1)
	stranger := &Partition{id: 99}

	if _, err := m.GetPartitionIDFromStream(bytes.NewReader(stranger.Bytes())); err == nil {
		t.Error("expected error for partition not in the map: got nil")
	}
}

func TestBadPartitionLayoutVersion(t *testing.T) {
	m := New(1)
	raw := m.GetPartition(1).Bytes()
	raw[1] = 0xff

	if _, err := m.GetPartitionIDFromStream(bytes.NewReader(raw)); err == nil {
		t.Error("expected error for unknown partition layout version: got nil")
	}
}

func TestTruncatedPartition(t *testing.T) {
	m := New(1)
	raw := m.GetPartition(1).Bytes()

	for cut := 0; cut < len(raw); cut++ {
		if _, err := m.GetPartitionIDFromStream(bytes.NewReader(raw[:cut])); err == nil {
			t.Errorf("expected error for partition truncated at %d: got nil", cut)
		}
	}
}
