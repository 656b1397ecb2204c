package sntp

import (
	"encoding/binary"
	"errors"
	"testing"
)

// validResponse builds a well-formed server response with the given
// transmit timestamp.
func validResponse(secs, frac uint32) []byte {
	pkt := make([]byte, PacketSize)
	pkt[0] = VersionNTPv3<<3 | ModeServer
	pkt[1] = 2 // stratum
	binary.BigEndian.PutUint32(pkt[40:44], secs)
	binary.BigEndian.PutUint32(pkt[44:48], frac)
	return pkt
}

func TestBuildRequest(t *testing.T) {
	pkt := BuildRequest()

	if len(pkt) != PacketSize {
		t.Fatalf("len = %d, want %d", len(pkt), PacketSize)
	}
	if pkt[0] != 0x1B {
		t.Errorf("first byte = %#x, want 0x1B", pkt[0])
	}
	for i, b := range pkt[1:] {
		if b != 0 {
			t.Errorf("byte %d = %#x, want 0", i+1, b)
		}
	}
}

func TestParseResponse(t *testing.T) {
	ts, err := ParseResponse(validResponse(0x9500beef, 0x80000000))
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if ts.Seconds != 0x9500beef {
		t.Errorf("Seconds = %#x, want 0x9500beef", ts.Seconds)
	}
	if ts.Fraction != 0x80000000 {
		t.Errorf("Fraction = %#x, want 0x80000000", ts.Fraction)
	}
}

func TestParseResponseBroadcastMode(t *testing.T) {
	pkt := validResponse(0x9500beef, 0)
	pkt[0] = VersionNTPv3<<3 | ModeBroadcast

	if _, err := ParseResponse(pkt); err != nil {
		t.Errorf("broadcast mode rejected: %v", err)
	}
}

func TestParseResponseErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]byte)
		wantErr error
	}{
		{
			name:    "client mode",
			mutate:  func(p []byte) { p[0] = VersionNTPv3<<3 | ModeClient },
			wantErr: ErrInvalidMode,
		},
		{
			name:    "reserved mode",
			mutate:  func(p []byte) { p[0] = VersionNTPv3 << 3 },
			wantErr: ErrInvalidMode,
		},
		{
			name:    "kiss of death",
			mutate:  func(p []byte) { p[1] = 0 },
			wantErr: ErrKissOfDeath,
		},
		{
			name: "no timestamp",
			mutate: func(p []byte) {
				binary.BigEndian.PutUint32(p[40:44], 0)
			},
			wantErr: ErrNoTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkt := validResponse(0x9500beef, 0x12345678)
			tt.mutate(pkt)

			_, err := ParseResponse(pkt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseResponseShortPacket(t *testing.T) {
	if _, err := ParseResponse(make([]byte, 20)); !errors.Is(err, ErrShortPacket) {
		t.Errorf("err = %v, want %v", err, ErrShortPacket)
	}
}

func TestToLocal(t *testing.T) {
	tests := []struct {
		name       string
		ntpSecs    uint32
		offsetMins int
		want       uint32
		wantErr    bool
	}{
		{name: "epoch boundary", ntpSecs: LocalEpochOffset, offsetMins: 0, want: 0},
		{name: "one hour in", ntpSecs: LocalEpochOffset + 3600, offsetMins: 0, want: 3600},
		{name: "positive offset", ntpSecs: LocalEpochOffset + 3600, offsetMins: 30, want: 5400},
		{name: "negative offset", ntpSecs: LocalEpochOffset + 7200, offsetMins: -60, want: 3600},
		{name: "before epoch", ntpSecs: LocalEpochOffset - 1, offsetMins: 0, wantErr: true},
		{name: "offset underflow", ntpSecs: LocalEpochOffset + 3600, offsetMins: -120, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToLocal(tt.ntpSecs, tt.offsetMins)
			if tt.wantErr {
				if !errors.Is(err, ErrBeforeEpoch) {
					t.Fatalf("err = %v, want %v", err, ErrBeforeEpoch)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToLocal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToLocalMonotonic(t *testing.T) {
	var prev uint32
	for i, secs := 0, uint32(LocalEpochOffset); i < 100; i, secs = i+1, secs+86400 {
		got, err := ToLocal(secs, -480)
		if err != nil {
			if i == 0 {
				continue // first sample may underflow with a negative offset
			}
			t.Fatalf("ToLocal(%d): %v", secs, err)
		}
		if i > 0 && got <= prev {
			t.Fatalf("not monotonic at %d: %d <= %d", secs, got, prev)
		}
		prev = got
	}
}

func TestTimestampUnixTime(t *testing.T) {
	// 2026-01-01 00:00:00 UTC is 1767225600 Unix seconds.
	ts := Timestamp{Seconds: 1767225600 + UnixEpochOffset}
	if got := ts.UnixTime().Unix(); got != 1767225600 {
		t.Errorf("Unix = %d, want 1767225600", got)
	}
}
