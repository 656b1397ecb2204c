// Package syncer drives the periodic SNTP exchange: it transmits
// requests built by pkg/sntp, parses the responses, applies the
// configured timezone offset, and optionally steps the system clock.
package syncer

import (
	"fmt"
	"sync"
	"time"

	"github.com/cyberman/SyncTime/internal/config"
	"github.com/cyberman/SyncTime/internal/history"
	"github.com/cyberman/SyncTime/internal/logger"
	"github.com/cyberman/SyncTime/internal/tz"
	"github.com/cyberman/SyncTime/pkg/sntp"
)

// Status is a snapshot of the sync state for display.
type Status struct {
	Synchronized bool          `json:"synchronized"`
	Server       string        `json:"server"`
	Zone         string        `json:"zone"`
	OffsetMins   int           `json:"offset_mins"`
	DSTActive    bool          `json:"dst_active"`
	LocalSecs    uint32        `json:"local_secs"`
	LastSync     time.Time     `json:"last_sync"`
	NextSync     time.Time     `json:"next_sync"`
	RTT          time.Duration `json:"rtt"`
	LastError    string        `json:"last_error,omitempty"`
}

// Manager runs the sync loop.
type Manager struct {
	mu       sync.RWMutex
	cfg      *config.Config
	log      *logger.Logger
	engine   *tz.Engine
	recorder *history.Recorder
	clock    Clock
	status   Status
	kickChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

// NewManager creates a sync manager. A nil clock disables clock
// stepping regardless of configuration.
func NewManager(cfg *config.Config, engine *tz.Engine, clock Clock) *Manager {
	m := &Manager{
		cfg:      cfg,
		log:      logger.GetLogger(),
		engine:   engine,
		recorder: history.GetRecorder(),
		clock:    clock,
		kickChan: make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
	m.recorder.SetEnabled(cfg.Logging.RecordHistory)
	return m
}

// Start begins the sync loop.
func (m *Manager) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	m.wg.Add(1)
	go m.loop()
}

// Stop stops the sync loop.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	close(m.stopChan)
	m.wg.Wait()
}

// ForceSync triggers an immediate sync without waiting for the timer.
func (m *Manager) ForceSync() {
	select {
	case m.kickChan <- struct{}{}:
	default:
	}
}

// GetStatus returns the current sync status.
func (m *Manager) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// loop retries every retry interval until the first success, then
// switches to the configured sync interval.
func (m *Manager) loop() {
	defer m.wg.Done()

	retry := time.Duration(m.cfg.Sync.RetrySecs) * time.Second
	if retry <= 0 {
		retry = 30 * time.Second
	}
	interval := time.Duration(m.cfg.Sync.IntervalMins) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	for {
		err := m.SyncOnce()

		wait := interval
		if err != nil {
			wait = retry
		}
		m.mu.Lock()
		m.status.NextSync = time.Now().Add(wait)
		m.mu.Unlock()

		select {
		case <-time.After(wait):
		case <-m.kickChan:
		case <-m.stopChan:
			return
		}
	}
}

// SyncOnce performs a single exchange and applies the result.
func (m *Manager) SyncOnce() error {
	addr := m.cfg.ServerAddr()
	zone := m.cfg.GetZone()

	ts, rtt, err := m.exchange(addr)
	if err != nil {
		m.log.LogExchange(addr, false, rtt, err.Error())
		m.recorder.Record(history.Event{
			Timestamp: time.Now(),
			Server:    addr,
			Success:   false,
			Error:     err.Error(),
			Zone:      zone,
			RTT:       rtt,
		})
		m.mu.Lock()
		m.status.Synchronized = false
		m.status.LastError = err.Error()
		m.mu.Unlock()
		return err
	}

	ent := m.engine.FindByName(zone)
	if zone != "" && ent == nil {
		m.log.Warnf("SYNC", "Unknown timezone %q, falling back to UTC", zone)
	}

	// DST is evaluated against the UTC instant, then the resulting
	// offset shifts the same instant into local time.
	utcSecs, err := sntp.ToLocal(ts.Seconds, 0)
	if err != nil {
		m.log.Errorf("SYNC", "Server time rejected: %v", err)
		return err
	}
	offsetMins := m.engine.OffsetMins(ent, utcSecs)
	localSecs, err := sntp.ToLocal(ts.Seconds, offsetMins)
	if err != nil {
		m.log.Errorf("SYNC", "Server time rejected: %v", err)
		return err
	}

	if m.cfg.Sync.Verify {
		m.verify(ts)
	}

	if m.cfg.Sync.SetClock && m.clock != nil {
		if err := m.clock.Set(ts.UnixTime()); err != nil {
			m.log.Errorf("SYNC", "Failed to set system clock: %v", err)
		} else {
			m.log.Info("SYNC", "System clock set")
		}
	}

	m.mu.Lock()
	m.status = Status{
		Synchronized: true,
		Server:       addr,
		Zone:         zone,
		OffsetMins:   offsetMins,
		DSTActive:    m.engine.IsDSTActive(ent, utcSecs),
		LocalSecs:    localSecs,
		LastSync:     time.Now(),
		NextSync:     m.status.NextSync,
		RTT:          rtt,
	}
	m.mu.Unlock()

	m.log.LogExchange(addr, true, rtt, fmt.Sprintf("local time %s", FormatLocal(localSecs)))
	m.recorder.Record(history.Event{
		Timestamp:  time.Now(),
		Server:     addr,
		Success:    true,
		Zone:       zone,
		OffsetMins: offsetMins,
		LocalSecs:  localSecs,
		RTT:        rtt,
	})

	return nil
}

// FormatLocal renders local-epoch seconds as a human-readable
// timestamp.
func FormatLocal(localSecs uint32) string {
	d := tz.SecondsToDate(localSecs)
	rem := localSecs % 3600
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, rem/60, rem%60)
}
