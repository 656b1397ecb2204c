// Package sntp implements the SNTP wire protocol used by SyncTime:
// building client request packets, validating and parsing server
// response packets, and converting NTP timestamps to the local epoch.
// Wire layout follows RFC 4330 (SNTPv4); the client speaks NTPv3.
package sntp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// NTP timestamps count seconds from January 1, 1900 00:00:00 UTC.
// SyncTime counts seconds from its local epoch, January 1, 1978
// 00:00:00 UTC. Local timestamps are unsigned and never negative.
const (
	LocalEpochOffset = 2461449600 // seconds between the NTP epoch and the local epoch
	UnixEpochOffset  = 2208988800 // seconds between the NTP epoch and the Unix epoch

	// NTP packet size (no authentication fields)
	PacketSize = 48

	// Mode values
	ModeClient    = 3
	ModeServer    = 4
	ModeBroadcast = 5

	// Version values
	VersionNTPv3 = 3
	VersionNTPv4 = 4
)

// Parse failures. ErrKissOfDeath is surfaced distinctly so the caller
// can avoid hammering a server that explicitly refused to serve time.
var (
	ErrShortPacket = errors.New("sntp: packet shorter than 48 bytes")
	ErrInvalidMode = errors.New("sntp: response mode is not server or broadcast")
	ErrKissOfDeath = errors.New("sntp: stratum 0 kiss-of-death response")
	ErrNoTimestamp = errors.New("sntp: server did not set a transmit timestamp")
	ErrBeforeEpoch = errors.New("sntp: timestamp predates the local epoch")
)

// Timestamp holds the raw transmit timestamp extracted from a server
// response: seconds since the NTP epoch and the fractional part in
// units of 1/2^32 second.
type Timestamp struct {
	Seconds  uint32
	Fraction uint32
}

// UnixTime converts the timestamp to a UTC time.Time for handing to
// the system clock.
func (t Timestamp) UnixTime() time.Time {
	secs := int64(t.Seconds) - UnixEpochOffset
	nanos := int64((float64(t.Fraction) / float64(1<<32)) * 1e9)
	return time.Unix(secs, nanos).UTC()
}

// BuildRequest returns a 48-byte SNTP client request. Every byte is
// zero except the first, which encodes NTPv3 client mode (0x1B). The
// caller transmits the packet verbatim; no timestamp fields are set.
func BuildRequest() []byte {
	pkt := make([]byte, PacketSize)
	pkt[0] = VersionNTPv3<<3 | ModeClient
	return pkt
}

// ParseResponse validates a server response and extracts its transmit
// timestamp. The mode must be server or broadcast, the stratum must be
// non-zero, and the transmit seconds field must be set. The timestamp
// is returned raw; no epoch conversion happens here.
func ParseResponse(data []byte) (Timestamp, error) {
	if len(data) < PacketSize {
		return Timestamp{}, ErrShortPacket
	}

	mode := data[0] & 0x07
	if mode != ModeServer && mode != ModeBroadcast {
		return Timestamp{}, fmt.Errorf("%w: mode %d", ErrInvalidMode, mode)
	}

	// Stratum 0 means the server refuses to serve time, typically
	// rate limiting (RFC 5905 kiss codes).
	if data[1] == 0 {
		return Timestamp{}, ErrKissOfDeath
	}

	secs := binary.BigEndian.Uint32(data[40:44])
	frac := binary.BigEndian.Uint32(data[44:48])
	if secs == 0 {
		return Timestamp{}, ErrNoTimestamp
	}

	return Timestamp{Seconds: secs, Fraction: frac}, nil
}

// ToLocal converts seconds since the NTP epoch to seconds since the
// local epoch with a zone offset applied. offsetMins comes from the
// timezone engine and may be negative. ErrBeforeEpoch is returned when
// the result would fall before the local epoch: either the server
// clock is decades in the past or a very negative offset applied to a
// timestamp just after the epoch would wrap the unsigned result.
func ToLocal(ntpSecs uint32, offsetMins int) (uint32, error) {
	if uint64(ntpSecs) < LocalEpochOffset {
		return 0, ErrBeforeEpoch
	}
	local := int64(ntpSecs) - LocalEpochOffset + int64(offsetMins)*60
	if local < 0 {
		return 0, ErrBeforeEpoch
	}
	return uint32(local), nil
}
