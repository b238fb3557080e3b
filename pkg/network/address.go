// Package network implements parsing of the network level primitives of an
// SDP document: the network type token, the address type token and unicast
// address literals.
package network

import (
	"fmt"
	"net"
	"strings"
)

// ParseUnicastAddr parses value as an IP literal of the family named by
// addrType. A literal of the other family is rejected, an IPv4 mapped IPv6
// literal does not satisfy AddrTypeIP4.
func ParseUnicastAddr(addrType AddrType, value string) (net.IP, error) {
	ip := net.ParseIP(value)
	if ip == nil {
		return nil, fmt.Errorf("%w `%v`", errAddressInvalid, value)
	}

	// The family of the literal follows its syntax, IPv6 literals always
	// contain a colon while IPv4 literals never do.
	isIP6 := strings.Contains(value, ":")
	switch addrType {
	case AddrTypeIP4:
		if isIP6 {
			return nil, fmt.Errorf("%w `%v`", errAddressTypeMismatch, value)
		}
	case AddrTypeIP6:
		if !isIP6 {
			return nil, fmt.Errorf("%w `%v`", errAddressTypeMismatch, value)
		}
	default:
		return nil, fmt.Errorf("%w `%v`", errAddrTypeInvalid, addrType)
	}

	return ip, nil
}

// ParseUnicastAddrUnknownType parses value as an IP literal without an
// accompanying address type token. The family is guessed from the literal,
// anything containing a '.' is treated as IPv4 and everything else as IPv6.
func ParseUnicastAddrUnknownType(value string) (net.IP, error) {
	if !strings.Contains(value, ".") {
		return ParseUnicastAddr(AddrTypeIP6, value)
	}

	return ParseUnicastAddr(AddrTypeIP4, value)
}
