package network

import (
	"fmt"
	"strings"
)

// AddrType indicates the address family token of an address carrying line.
type AddrType int

const (
	// AddrTypeIP4 indicates an IPv4 address.
	AddrTypeIP4 AddrType = iota + 1

	// AddrTypeIP6 indicates an IPv6 address.
	AddrTypeIP6
)

// This is done this way because of a linter.
const (
	addrTypeIP4Str = "IP4"
	addrTypeIP6Str = "IP6"
)

// NewAddrType defines a procedure for creating a new AddrType from a raw
// string. Matching is case insensitive.
func NewAddrType(raw string) (AddrType, error) {
	switch strings.ToUpper(raw) {
	case addrTypeIP4Str:
		return AddrTypeIP4, nil
	case addrTypeIP6Str:
		return AddrTypeIP6, nil
	default:
		return AddrType(Unknown), fmt.Errorf("%w `%v`", errAddrTypeInvalid, raw)
	}
}

func (t AddrType) String() string {
	switch t {
	case AddrTypeIP4:
		return addrTypeIP4Str
	case AddrTypeIP6:
		return addrTypeIP6Str
	default:
		return unknownStr
	}
}
