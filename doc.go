// Package hwaddr converts between integer hardware identifiers and their
// conventional text form: six colon-separated uppercase hexadecimal octets,
// as in "4A:89:26:C4:45:78".
//
// # Formatting
//
// [Format] renders any uint64. The value is left-padded with zero octets and
// only its low 48 bits are kept, so wider values are silently truncated:
//
//	hwaddr.Format(0)              // "00:00:00:00:00:00"
//	hwaddr.Format(0x4a8926c44578) // "4A:89:26:C4:45:78"
//
// [FormatInt], [FormatBig] and [FormatString] accept signed, arbitrary-width
// and textual integers and fail with [ErrInvalidArgument] on negative or
// non-integer input.
//
// # Formatter
//
// A [Formatter] changes the defaults:
//
//	f := hwaddr.New().
//		WithGrouping(hwaddr.GroupGreedy).
//		WithStrict(true).
//		WithLogger(slog.Default())
//
// [GroupGreedy] reproduces the output of older frontends, which split an
// odd-length hex string into pairs from the left and left a single trailing
// digit. Strict formatters reject values above [MaxValue] with
// [ErrOutOfRange].
//
// # Conversion
//
// [Parse] reads a formatted address back into an integer, and
// [ToHardwareAddr] / [FromHardwareAddr] bridge to [net.HardwareAddr].
//
// # Local Addresses
//
// [LocalAddrs] lists the addresses of physical network interfaces and
// [NodeID] picks the lowest one, skipping loopback, virtual, VPN, and
// container interfaces.
//
// # CLI Tool
//
// A command-line tool is provided in cmd/hwaddr:
//
//	hwaddr 81952921372024
//	hwaddr -greedy 0xabc
//	hwaddr -reverse 4A:89:26:C4:45:78
//	hwaddr -local -json
package hwaddr
