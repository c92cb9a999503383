package protocol

import (
	"encoding/binary"
	"io"

	"github.com/lehoon/ambry/pkg/cmap"
	"github.com/lehoon/ambry/pkg/store"
	"github.com/pkg/errors"
)

// Message info list wire layout (big-endian, self-delimiting):
//
//	4 bytes  entry count
//	per entry:
//	  blob id        (partition id bytes, 2-byte length, id string)
//	  8 bytes        size
//	  8 bytes        expiry time in ms
//	  1 byte         deleted flag
//	  V2 and above:
//	  1 byte         crc present flag
//	  4 bytes        crc, only when present

// SerializeMessageInfoList writes the list in the given encoding
// version.
func SerializeMessageInfoList(w io.Writer, infos []store.MessageInfo, version MessageInfoListVersion) error {
	if err := checkListVersion(version); err != nil {
		return err
	}

	if err := binary.Write(w, binary.BigEndian, int32(len(infos))); err != nil {
		return errors.Wrap(err, "failed to write message info count")
	}
	for i := range infos {
		if err := writeMessageInfo(w, infos[i], version); err != nil {
			return err
		}
	}
	return nil
}

func writeMessageInfo(w io.Writer, info store.MessageInfo, version MessageInfoListVersion) error {
	if err := info.ID.WriteTo(w); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, info.Size); err != nil {
		return errors.Wrap(err, "failed to write message size")
	}
	if err := binary.Write(w, binary.BigEndian, info.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to write message expiry")
	}
	if err := writeBool(w, info.Deleted); err != nil {
		return errors.Wrap(err, "failed to write deleted flag")
	}

	if version >= MessageInfoListV2 {
		if err := writeBool(w, info.CRC != nil); err != nil {
			return errors.Wrap(err, "failed to write crc flag")
		}
		if info.CRC != nil {
			if err := binary.Write(w, binary.BigEndian, *info.CRC); err != nil {
				return errors.Wrap(err, "failed to write crc")
			}
		}
	}
	return nil
}

// DeserializeMessageInfoList consumes one serialized list from the
// stream, resolving embedded partition ids against the cluster map.
func DeserializeMessageInfoList(r io.Reader, clusterMap cmap.ClusterMap, version MessageInfoListVersion) ([]store.MessageInfo, error) {
	if err := checkListVersion(version); err != nil {
		return nil, err
	}

	var count int32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, wireErr(err, "failed to read message info count")
	}
	if count < 0 {
		return nil, errors.Wrapf(ErrMalformedWireData, "negative message info count: %d", count)
	}

	// The count comes off the wire, so it must not size the allocation:
	// a corrupt stream would reserve gigabytes before the first entry
	// fails to decode.
	infos := []store.MessageInfo{}
	for i := int32(0); i < count; i++ {
		info, err := readMessageInfo(r, clusterMap, version)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func readMessageInfo(r io.Reader, clusterMap cmap.ClusterMap, version MessageInfoListVersion) (store.MessageInfo, error) {
	var info store.MessageInfo
	var err error

	info.ID, err = store.ReadBlobIDFromStream(r, clusterMap)
	if err != nil {
		return info, wireErr(err, "failed to read blob id")
	}
	if err = binary.Read(r, binary.BigEndian, &info.Size); err != nil {
		return info, wireErr(err, "failed to read message size")
	}
	if err = binary.Read(r, binary.BigEndian, &info.ExpiresAt); err != nil {
		return info, wireErr(err, "failed to read message expiry")
	}
	info.Deleted, err = readBool(r)
	if err != nil {
		return info, wireErr(err, "failed to read deleted flag")
	}

	if version >= MessageInfoListV2 {
		hasCRC, err := readBool(r)
		if err != nil {
			return info, wireErr(err, "failed to read crc flag")
		}
		if hasCRC {
			var crc uint32
			if err = binary.Read(r, binary.BigEndian, &crc); err != nil {
				return info, wireErr(err, "failed to read crc")
			}
			info.CRC = &crc
		}
	}
	return info, nil
}

// MessageInfoListSize returns the exact serialized length of the list
// in the given encoding version, without serializing it.
func MessageInfoListSize(infos []store.MessageInfo, version MessageInfoListVersion) (int, error) {
	if err := checkListVersion(version); err != nil {
		return 0, err
	}

	size := 4
	for i := range infos {
		size += infos[i].ID.SizeInBytes() + 8 + 8 + 1
		if version >= MessageInfoListV2 {
			size++
			if infos[i].CRC != nil {
				size += 4
			}
		}
	}
	return size, nil
}

func writeBool(w io.Writer, v bool) error {
	b := []byte{0}
	if v {
		b[0] = 1
	}
	_, err := w.Write(b)
	return err
}

func readBool(r io.Reader) (bool, error) {
	b := []byte{0}
	if _, err := io.ReadFull(r, b); err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(ErrMalformedWireData, "invalid boolean byte: %d", b[0])
	}
}
