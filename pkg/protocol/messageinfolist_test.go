package protocol

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/lehoon/ambry/pkg/cmap"
	"github.com/lehoon/ambry/pkg/store"
	"github.com/pkg/errors"
)

func testMessageInfos(m *cmap.CMap) []store.MessageInfo {
	crc := uint32(0xdeadbeef)
	return []store.MessageInfo{
		{ID: store.NewBlobID(m.GetPartition(1)), Size: 1024, ExpiresAt: store.NoExpiration},
		{ID: store.NewBlobID(m.GetPartition(1)), Size: 2048, ExpiresAt: 1500000000000, Deleted: true},
		{ID: store.NewBlobID(m.GetPartition(1)), Size: 4096, ExpiresAt: store.NoExpiration, CRC: &crc},
	}
}

func messageInfosEqual(a, b []store.MessageInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID.UUID != b[i].ID.UUID ||
			a[i].ID.Partition.ID() != b[i].ID.Partition.ID() ||
			a[i].Size != b[i].Size ||
			a[i].ExpiresAt != b[i].ExpiresAt ||
			a[i].Deleted != b[i].Deleted {
			return false
		}
		if (a[i].CRC == nil) != (b[i].CRC == nil) {
			return false
		}
		if a[i].CRC != nil && *a[i].CRC != *b[i].CRC {
			return false
		}
	}
	return true
}

func TestMessageInfoListRoundTripV2(t *testing.T) {
	m := cmap.New(1)
	infos := testMessageInfos(m)

	buf := &bytes.Buffer{}
	if err := SerializeMessageInfoList(buf, infos, MessageInfoListV2); err != nil {
		t.Fatalf("unexpected error serializing: %v", err)
	}

	size, err := MessageInfoListSize(infos, MessageInfoListV2)
	if err != nil {
		t.Fatalf("unexpected error sizing: %v", err)
	}
	if buf.Len() != size {
		t.Errorf("expected serialized size %d: got %d", size, buf.Len())
	}

	got, err := DeserializeMessageInfoList(buf, m, MessageInfoListV2)
	if err != nil {
		t.Fatalf("unexpected error deserializing: %v", err)
	}
	if !messageInfosEqual(infos, got) {
		t.Errorf("expected round-tripped list %+v: got %+v", infos, got)
	}
}

func TestMessageInfoListRoundTripV1DropsCRC(t *testing.T) {
	m := cmap.New(1)
	infos := testMessageInfos(m)

	buf := &bytes.Buffer{}
	if err := SerializeMessageInfoList(buf, infos, MessageInfoListV1); err != nil {
		t.Fatalf("unexpected error serializing: %v", err)
	}

	size, err := MessageInfoListSize(infos, MessageInfoListV1)
	if err != nil {
		t.Fatalf("unexpected error sizing: %v", err)
	}
	if buf.Len() != size {
		t.Errorf("expected serialized size %d: got %d", size, buf.Len())
	}

	got, err := DeserializeMessageInfoList(buf, m, MessageInfoListV1)
	if err != nil {
		t.Fatalf("unexpected error deserializing: %v", err)
	}
	for i := range got {
		if got[i].CRC != nil {
			t.Errorf("expected no crc in v1 entry %d: got %d", i, *got[i].CRC)
		}
	}
}

func TestMessageInfoListEmpty(t *testing.T) {
	m := cmap.New(1)

	for _, version := range []MessageInfoListVersion{MessageInfoListV1, MessageInfoListV2} {
		buf := &bytes.Buffer{}
		if err := SerializeMessageInfoList(buf, nil, version); err != nil {
			t.Fatalf("unexpected error serializing empty list in %s: %v", version.String(), err)
		}
		if buf.Len() != 4 {
			t.Errorf("expected empty list in %s to be 4 bytes: got %d", version.String(), buf.Len())
		}

		got, err := DeserializeMessageInfoList(buf, m, version)
		if err != nil {
			t.Fatalf("unexpected error deserializing empty list in %s: %v", version.String(), err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty list in %s: got %d entries", version.String(), len(got))
		}
	}
}

func TestMessageInfoListNegativeCount(t *testing.T) {
	m := cmap.New(1)
	raw := []byte{0xff, 0xff, 0xff, 0xff}

	_, err := DeserializeMessageInfoList(bytes.NewReader(raw), m, MessageInfoListV1)
	if errors.Cause(err) != ErrMalformedWireData {
		t.Errorf("expected ErrMalformedWireData for negative count: got %v", err)
	}
}

// A huge count field must fail decoding the missing entries, not
// reserve memory for them up front.
func TestMessageInfoListHugeCount(t *testing.T) {
	m := cmap.New(1)

	for _, count := range []int32{0x7fffffff, 1 << 24} {
		buf := &bytes.Buffer{}
		if err := binary.Write(buf, binary.BigEndian, count); err != nil {
			t.Fatalf("unexpected error writing count: %v", err)
		}

		_, err := DeserializeMessageInfoList(buf, m, MessageInfoListV1)
		if errors.Cause(err) != ErrIncompleteData {
			t.Errorf("expected ErrIncompleteData for count %d: got %v", count, err)
		}
	}
}

func TestMessageInfoListUnknownVersion(t *testing.T) {
	m := cmap.New(1)
	infos := testMessageInfos(m)
	bad := MessageInfoListVersion(9)

	if err := SerializeMessageInfoList(&bytes.Buffer{}, infos, bad); errors.Cause(err) != ErrUnsupportedVersion {
		t.Errorf("expected ErrUnsupportedVersion from serialize: got %v", err)
	}
	if _, err := DeserializeMessageInfoList(bytes.NewReader(nil), m, bad); errors.Cause(err) != ErrUnsupportedVersion {
		t.Errorf("expected ErrUnsupportedVersion from deserialize: got %v", err)
	}
	if _, err := MessageInfoListSize(infos, bad); errors.Cause(err) != ErrUnsupportedVersion {
		t.Errorf("expected ErrUnsupportedVersion from size: got %v", err)
	}
}

func TestMessageInfoListTruncated(t *testing.T) {
	m := cmap.New(1)
	infos := testMessageInfos(m)

	buf := &bytes.Buffer{}
	if err := SerializeMessageInfoList(buf, infos, MessageInfoListV2); err != nil {
		t.Fatalf("unexpected error serializing: %v", err)
	}

	raw := buf.Bytes()
	for cut := 0; cut < len(raw); cut++ {
		_, err := DeserializeMessageInfoList(bytes.NewReader(raw[:cut]), m, MessageInfoListV2)
		if err == nil {
			t.Fatalf("expected error for list truncated at %d: got nil", cut)
		}
	}
}
