package cmap

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// partitionLayoutVersion is the version of the serialized partition id
// layout: a 2-byte layout version followed by an 8-byte id.
const partitionLayoutVersion int16 = 1

// partitionIDBytes is the serialized length of a partition id.
const partitionIDBytes = 2 + 8

// Partition is a shard of the cluster keyspace.
type Partition struct {
	id int64
}

// ID returns the numeric id of the partition.
func (p *Partition) ID() int64 {
	return p.id
}

// Bytes returns the serialized form of the partition id: big-endian
// layout version and id, with no padding.
func (p *Partition) Bytes() []byte {
	buf := make([]byte, partitionIDBytes)
	binary.BigEndian.PutUint16(buf[0:2], uint16(partitionLayoutVersion))
	binary.BigEndian.PutUint64(buf[2:], uint64(p.id))
	return buf
}

// String returns a human readable form of the partition id.
func (p *Partition) String() string {
	return fmt.Sprintf("Partition[%d]", p.id)
}

// readPartition consumes one serialized partition id from the stream.
func readPartition(r io.Reader) (*Partition, error) {
	buf := make([]byte, partitionIDBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "failed to read partition id from stream")
	}

	version := int16(binary.BigEndian.Uint16(buf[0:2]))
	if version != partitionLayoutVersion {
		return nil, errors.Errorf("unknown partition id layout version: %d", version)
	}

	return &Partition{id: int64(binary.BigEndian.Uint64(buf[2:]))}, nil
}
