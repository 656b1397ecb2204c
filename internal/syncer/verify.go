package syncer

import (
	"time"

	"github.com/beevik/ntp"

	"github.com/cyberman/SyncTime/pkg/sntp"
)

// verify cross-checks our own codec's result against an independent
// query through the ntp library and logs any disagreement. Useful when
// pointing SyncTime at an unfamiliar server.
func (m *Manager) verify(ts sntp.Timestamp) {
	timeout := time.Duration(m.cfg.Server.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	resp, err := ntp.QueryWithOptions(m.cfg.Server.Address, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		m.log.Warnf("VERIFY", "Reference query failed: %v", err)
		return
	}
	if err := resp.Validate(); err != nil {
		m.log.Warnf("VERIFY", "Reference response invalid: %v", err)
		return
	}

	delta := ts.UnixTime().Sub(resp.Time)
	if delta < 0 {
		delta = -delta
	}
	if delta > 2*time.Second {
		m.log.Warnf("VERIFY", "Parsed time differs from reference by %v", delta)
		return
	}
	m.log.Debugf("VERIFY", "Parsed time agrees with reference within %v", delta)
}
