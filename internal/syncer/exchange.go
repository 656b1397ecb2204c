package syncer

import (
	"fmt"
	"net"
	"time"

	"github.com/cyberman/SyncTime/pkg/sntp"
)

// exchange performs one request/response round trip over UDP and
// returns the parsed transmit timestamp with the measured round-trip
// time.
func (m *Manager) exchange(addr string) (sntp.Timestamp, time.Duration, error) {
	timeout := time.Duration(m.cfg.Server.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	conn, err := net.Dial("udp", addr)
	if err != nil {
		return sntp.Timestamp{}, 0, fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return sntp.Timestamp{}, 0, fmt.Errorf("set deadline: %w", err)
	}

	start := time.Now()
	if _, err := conn.Write(sntp.BuildRequest()); err != nil {
		return sntp.Timestamp{}, 0, fmt.Errorf("send request: %w", err)
	}

	buf := make([]byte, sntp.PacketSize)
	n, err := conn.Read(buf)
	rtt := time.Since(start)
	if err != nil {
		return sntp.Timestamp{}, rtt, fmt.Errorf("read response: %w", err)
	}

	ts, err := sntp.ParseResponse(buf[:n])
	if err != nil {
		return sntp.Timestamp{}, rtt, err
	}
	return ts, rtt, nil
}
