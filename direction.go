package sdp

import "strings"

// Direction indicates the direction constraint carried inside an attribute
// value, as in the direction suffix of an extmap attribute.
type Direction int

const (
	// DirectionSendrecv indicates media is to be sent and received.
	DirectionSendrecv Direction = iota + 1

	// DirectionSendonly indicates media is only to be sent.
	DirectionSendonly

	// DirectionRecvonly indicates media is only to be received.
	DirectionRecvonly
)

// This is done this way because of a linter.
const (
	directionSendrecvStr = "sendrecv"
	directionSendonlyStr = "sendonly"
	directionRecvonlyStr = "recvonly"
)

// NewDirection defines a procedure for creating a new Direction from a raw
// string. Matching is case insensitive.
func NewDirection(raw string) (Direction, error) {
	switch strings.ToLower(raw) {
	case directionSendrecvStr:
		return DirectionSendrecv, nil
	case directionSendonlyStr:
		return DirectionSendonly, nil
	case directionRecvonlyStr:
		return DirectionRecvonly, nil
	default:
		return Direction(Unknown), errDirectionUnknown
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionSendrecv:
		return directionSendrecvStr
	case DirectionSendonly:
		return directionSendonlyStr
	case DirectionRecvonly:
		return directionRecvonlyStr
	default:
		return ErrUnknownType.Error()
	}
}
