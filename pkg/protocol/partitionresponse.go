package protocol

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lehoon/ambry/pkg/cmap"
	"github.com/lehoon/ambry/pkg/commons"
	"github.com/lehoon/ambry/pkg/store"
	"github.com/pkg/errors"
)

// errorCodeSizeInBytes is the fixed width of the error code field.
const errorCodeSizeInBytes = 2

// PartitionResponseInfo is the result for one partition of a get
// request: either a list of message infos or a server error code. Its
// wire form is the partition id bytes, the message info list in the
// version resolved from the get response version, and a 2-byte error
// code ordinal. It is immutable once constructed.
type PartitionResponseInfo struct {
	partition   cmap.PartitionID
	infos       []store.MessageInfo
	listSize    int
	listVersion MessageInfoListVersion
	errorCode   commons.ServerErrorCode
}

func newPartitionResponseInfo(partition cmap.PartitionID, infos []store.MessageInfo,
	code commons.ServerErrorCode, listVersion MessageInfoListVersion) (*PartitionResponseInfo, error) {
	// The list size is computed once here and cached. SizeInBytes and
	// WriteTo both depend on it staying equal to what the serde emits.
	listSize, err := MessageInfoListSize(infos, listVersion)
	if err != nil {
		return nil, err
	}

	retained := make([]store.MessageInfo, len(infos))
	copy(retained, infos)

	return &PartitionResponseInfo{
		partition:   partition,
		infos:       retained,
		listSize:    listSize,
		listVersion: listVersion,
		errorCode:   code,
	}, nil
}

// NewSuccessResponse builds the response unit for a partition whose get
// succeeded with the given message infos.
func NewSuccessResponse(partition cmap.PartitionID, infos []store.MessageInfo,
	version GetResponseVersion) (*PartitionResponseInfo, error) {
	listVersion, err := ListVersionFor(version)
	if err != nil {
		return nil, err
	}
	return newPartitionResponseInfo(partition, infos, commons.NoError, listVersion)
}

// NewErrorResponse builds the response unit for a partition whose get
// failed with the given error code. Error responses carry no payload.
func NewErrorResponse(partition cmap.PartitionID, code commons.ServerErrorCode,
	version GetResponseVersion) (*PartitionResponseInfo, error) {
	listVersion, err := ListVersionFor(version)
	if err != nil {
		return nil, err
	}
	return newPartitionResponseInfo(partition, nil, code, listVersion)
}

// ReadPartitionResponseInfo consumes one serialized response unit from
// the stream. The partition id is resolved by the cluster map and the
// message info list version is resolved from the get response version.
func ReadPartitionResponseInfo(r io.Reader, clusterMap cmap.ClusterMap,
	version GetResponseVersion) (*PartitionResponseInfo, error) {
	listVersion, err := ListVersionFor(version)
	if err != nil {
		return nil, err
	}

	partition, err := clusterMap.GetPartitionIDFromStream(r)
	if err != nil {
		return nil, wireErr(err, "failed to read partition id")
	}

	infos, err := DeserializeMessageInfoList(r, clusterMap, listVersion)
	if err != nil {
		return nil, err
	}

	var ordinal int16
	if err := binary.Read(r, binary.BigEndian, &ordinal); err != nil {
		return nil, wireErr(err, "failed to read error code")
	}
	code, err := commons.ErrorCodeFromOrdinal(ordinal)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedWireData, "%v", err)
	}

	if code != commons.NoError {
		// The list field was consumed above to keep the stream aligned,
		// but an error response never retains a payload.
		return newPartitionResponseInfo(partition, nil, code, listVersion)
	}
	return newPartitionResponseInfo(partition, infos, code, listVersion)
}

// Partition returns the partition this unit answers for.
func (p *PartitionResponseInfo) Partition() cmap.PartitionID {
	return p.partition
}

// MessageInfoList returns the message infos of a successful response.
// It is empty when ErrorCode is not NoError.
func (p *PartitionResponseInfo) MessageInfoList() []store.MessageInfo {
	infos := make([]store.MessageInfo, len(p.infos))
	copy(infos, p.infos)
	return infos
}

// ErrorCode returns the server error code of the response.
func (p *PartitionResponseInfo) ErrorCode() commons.ServerErrorCode {
	return p.errorCode
}

// WriteTo serializes the response unit to the writer. The unit has no
// length prefix: callers size buffers with SizeInBytes and rely on the
// self-delimiting list encoding.
func (p *PartitionResponseInfo) WriteTo(w io.Writer) error {
	if _, err := w.Write(p.partition.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write partition id")
	}
	if err := SerializeMessageInfoList(w, p.infos, p.listVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.errorCode.Ordinal()); err != nil {
		return errors.Wrap(err, "failed to write error code")
	}
	return nil
}

// SizeInBytes returns the exact number of bytes WriteTo emits, using
// the list size cached at construction time.
func (p *PartitionResponseInfo) SizeInBytes() int64 {
	return int64(len(p.partition.Bytes()) + p.listSize + errorCodeSizeInBytes)
}

// String returns a human readable form of the response unit.
func (p *PartitionResponseInfo) String() string {
	return fmt.Sprintf("PartitionResponseInfo[%s errorCode=%s messageInfoListSize=%d]",
		p.partition.String(), p.errorCode.String(), p.listSize)
}
