package network

import (
	"fmt"
	"strings"
)

// NetType indicates the network type token of an address carrying line.
// RFC 4566 defines IN as the only network type.
type NetType int

const (
	// NetTypeInternet indicates the IN network type.
	NetTypeInternet NetType = iota + 1
)

// This is done this way because of a linter.
const netTypeInternetStr = "IN"

// NewNetType defines a procedure for creating a new NetType from a raw
// string. Matching is case insensitive.
func NewNetType(raw string) (NetType, error) {
	if strings.ToUpper(raw) == netTypeInternetStr {
		return NetTypeInternet, nil
	}

	return NetType(Unknown), fmt.Errorf("%w `%v`", errNetTypeInvalid, raw)
}

func (t NetType) String() string {
	switch t {
	case NetTypeInternet:
		return netTypeInternetStr
	default:
		return unknownStr
	}
}
