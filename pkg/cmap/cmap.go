package cmap

import (
	"io"

	"github.com/pkg/errors"
)

// PartitionID is an opaque handle to one shard of the cluster keyspace.
// The wire codecs treat it as a byte string; only the cluster map knows
// how to produce or consume those bytes.
type PartitionID interface {
	// ID returns the numeric id of the partition.
	ID() int64
	// Bytes returns the serialized form of the partition id.
	Bytes() []byte
	// String returns a human readable form of the partition id.
	String() string
}

// ClusterMap resolves partition ids embedded in wire streams.
type ClusterMap interface {
	// GetPartitionIDFromStream consumes the serialized form of one
	// partition id from the stream and resolves it against the map.
	GetPartitionIDFromStream(r io.Reader) (PartitionID, error)
}

// CMap is an in-memory cluster map which knows the partitions of the
// cluster.
type CMap struct {
	partitions map[int64]*Partition
}

// New returns a cluster map holding the given partition ids.
func New(ids ...int64) *CMap {
	m := &CMap{
		partitions: make(map[int64]*Partition),
	}
	for _, id := range ids {
		m.partitions[id] = &Partition{id: id}
	}
	return m
}

// GetPartitionIDFromStream implements ClusterMap.
func (m *CMap) GetPartitionIDFromStream(r io.Reader) (PartitionID, error) {
	p, err := readPartition(r)
	if err != nil {
		return nil, err
	}
	if _, ok := m.partitions[p.id]; !ok {
		return nil, errors.Errorf("partition %d is not in the cluster map", p.id)
	}
	return p, nil
}

// GetPartition returns the partition with the given id, or nil if the
// map does not contain it.
func (m *CMap) GetPartition(id int64) PartitionID {
	p, ok := m.partitions[id]
	if !ok {
		return nil
	}
	return p
}
