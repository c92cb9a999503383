package protocol

import (
	"fmt"

	"github.com/pkg/errors"
)

// GetResponseVersion is the version of the aggregate get response
// message which embeds partition response units.
type GetResponseVersion int16

const (
	// GetResponseV1 is the initial get response version.
	GetResponseV1 GetResponseVersion = 1
	// GetResponseV2 is the get response version which carries message
	// info lists in their version 2 encoding.
	GetResponseV2 GetResponseVersion = 2
)

// String returns a human readable form of the version.
func (v GetResponseVersion) String() string {
	return fmt.Sprintf("GetResponse_V%d", int16(v))
}

// MessageInfoListVersion is the version of the message info list binary
// encoding.
type MessageInfoListVersion int16

const (
	// MessageInfoListV1 is the initial list encoding.
	MessageInfoListV1 MessageInfoListVersion = 1
	// MessageInfoListV2 extends entries with an optional crc field.
	MessageInfoListV2 MessageInfoListVersion = 2
)

// String returns a human readable form of the version.
func (v MessageInfoListVersion) String() string {
	return fmt.Sprintf("MessageInfoList_V%d", int16(v))
}

// ListVersionFor returns the message info list version to use for the
// given get response version. The two numbering schemes evolve
// independently, so the mapping is an explicit table: new get response
// versions must be added here, never defaulted.
func ListVersionFor(v GetResponseVersion) (MessageInfoListVersion, error) {
	switch v {
	case GetResponseV1:
		return MessageInfoListV1, nil
	case GetResponseV2:
		return MessageInfoListV2, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedVersion, "version %d", int16(v))
	}
}

func checkListVersion(v MessageInfoListVersion) error {
	switch v {
	case MessageInfoListV1, MessageInfoListV2:
		return nil
	default:
		return errors.Wrapf(ErrUnsupportedVersion, "message info list version %d", int16(v))
	}
}
