package store

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lehoon/ambry/pkg/cmap"
	"github.com/lehoon/ambry/pkg/util/uuid"
	"github.com/pkg/errors"
)

// BlobID identifies one stored object: the partition that owns it and
// a unique id within the partition. Its wire form is the partition id
// bytes followed by a 2-byte length and the id string.
type BlobID struct {
	Partition cmap.PartitionID
	UUID      string
}

// NewBlobID generates a fresh blob id in the given partition.
func NewBlobID(partition cmap.PartitionID) BlobID {
	return BlobID{
		Partition: partition,
		UUID:      uuid.Gen(),
	}
}

// SizeInBytes returns the serialized length of the blob id.
func (b BlobID) SizeInBytes() int {
	return len(b.Partition.Bytes()) + 2 + len(b.UUID)
}

// WriteTo serializes the blob id to the writer.
func (b BlobID) WriteTo(w io.Writer) error {
	if _, err := w.Write(b.Partition.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write blob id partition")
	}
	if err := binary.Write(w, binary.BigEndian, int16(len(b.UUID))); err != nil {
		return errors.Wrap(err, "failed to write blob id length")
	}
	if _, err := io.WriteString(w, b.UUID); err != nil {
		return errors.Wrap(err, "failed to write blob id")
	}
	return nil
}

// String returns a human readable form of the blob id.
func (b BlobID) String() string {
	return fmt.Sprintf("BlobID[%s:%s]", b.Partition.String(), b.UUID)
}

// ReadBlobIDFromStream consumes one serialized blob id from the stream,
// resolving the embedded partition id against the cluster map.
func ReadBlobIDFromStream(r io.Reader, clusterMap cmap.ClusterMap) (BlobID, error) {
	partition, err := clusterMap.GetPartitionIDFromStream(r)
	if err != nil {
		return BlobID{}, errors.Wrap(err, "failed to read blob id partition")
	}

	var length int16
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return BlobID{}, errors.Wrap(err, "failed to read blob id length")
	}
	if length < 0 {
		return BlobID{}, errors.Errorf("negative blob id length: %d", length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return BlobID{}, errors.Wrap(err, "failed to read blob id")
	}

	return BlobID{Partition: partition, UUID: string(buf)}, nil
}
