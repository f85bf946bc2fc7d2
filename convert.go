package hwaddr

import (
	"encoding/binary"
	"net"
	"strconv"
)

// ToHardwareAddr returns the low 48 bits of value as a big-endian
// [net.HardwareAddr].
func ToHardwareAddr(value uint64) net.HardwareAddr {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, value)

	return net.HardwareAddr(buf[8-octets:])
}

// FromHardwareAddr returns the integer form of a six-byte address.
func FromHardwareAddr(addr net.HardwareAddr) (uint64, error) {
	if len(addr) != octets {
		return 0, invalidArgument(addr.String(), "want "+strconv.Itoa(octets)+" bytes, got "+strconv.Itoa(len(addr)))
	}

	var value uint64
	for _, b := range addr {
		value = value<<8 | uint64(b)
	}

	return value, nil
}

// Parse reads a 48-bit address in any notation accepted by [net.ParseMAC]
// ("4A:89:26:C4:45:78", "4a-89-26-c4-45-78", "4a89.26c4.4578") and returns
// its integer form. It is the inverse of [Format].
func Parse(s string) (uint64, error) {
	addr, err := net.ParseMAC(s)
	if err != nil {
		return 0, &ArgumentError{Input: s, Err: ErrInvalidArgument}
	}
	if len(addr) != octets {
		return 0, invalidArgument(s, "not a 48-bit address")
	}

	return FromHardwareAddr(addr)
}
