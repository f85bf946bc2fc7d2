package hwaddr

import (
	"log/slog"
	"net"
	"slices"
	"strings"
)

// virtualInterfacePrefixes lists interface name prefixes that represent
// virtual, VPN, bridge, or ephemeral interfaces. Their addresses are not
// stable node identifiers.
var virtualInterfacePrefixes = []string{
	// VPN and tunnel interfaces
	"utun", "tun", "tap", "ipsec", "ppp",
	// Docker and container bridges
	"docker", "br-", "veth",
	// Virtual bridges and switches
	"virbr", "vnet", "vmnet",
	// Thunderbolt bridge
	"bridge",
	// Loopback variants
	"lo",
	// WireGuard
	"wg",
	// Parallels / VirtualBox / VMware
	"vnic", "vboxnet",
}

// interfaceLister is replaced in tests.
var interfaceLister = net.Interfaces

// LocalAddrs returns the integer form of every hardware address on
// up, non-loopback, physical interfaces, sorted ascending without duplicates.
func LocalAddrs(logger *slog.Logger) ([]uint64, error) {
	interfaces, err := interfaceLister()
	if err != nil {
		return nil, err
	}

	return filterInterfaces(interfaces, logger), nil
}

// NodeID returns the lowest local hardware address as an integer, the value
// agents report as their node identifier.
func NodeID(logger *slog.Logger) (uint64, error) {
	addrs, err := LocalAddrs(logger)
	if err != nil {
		return 0, err
	}
	if len(addrs) == 0 {
		return 0, ErrNoInterfaces
	}

	return addrs[0], nil
}

func filterInterfaces(interfaces []net.Interface, logger *slog.Logger) []uint64 {
	var addrs []uint64

	for _, i := range interfaces {
		if i.Flags&net.FlagLoopback != 0 || len(i.HardwareAddr) == 0 {
			continue
		}

		if i.Flags&net.FlagUp == 0 {
			if logger != nil {
				logger.Debug("skipping interface (not up)", "interface", i.Name)
			}

			continue
		}

		if isVirtualInterface(i.Name) {
			if logger != nil {
				logger.Debug("skipping virtual interface", "interface", i.Name)
			}

			continue
		}

		value, err := FromHardwareAddr(i.HardwareAddr)
		if err != nil {
			// EUI-64 and InfiniBand addresses
			if logger != nil {
				logger.Debug("skipping interface", "interface", i.Name, "error", err)
			}

			continue
		}

		if logger != nil {
			logger.Debug("including interface", "interface", i.Name, "mac", Format(value))
		}

		addrs = append(addrs, value)
	}

	slices.Sort(addrs)

	return slices.Compact(addrs)
}

// isVirtualInterface returns true if the interface name matches a known
// virtual, VPN, or bridge prefix.
func isVirtualInterface(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range virtualInterfacePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	return false
}
