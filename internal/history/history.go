// Package history records the outcome of sync exchanges so past runs
// can be reviewed from the status screen or the data directory.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cyberman/SyncTime/internal/config"
)

// Event is the recorded outcome of one sync attempt.
type Event struct {
	Timestamp  time.Time     `json:"timestamp"`
	Server     string        `json:"server"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	Zone       string        `json:"zone,omitempty"`
	OffsetMins int           `json:"offset_mins"`
	LocalSecs  uint32        `json:"local_secs,omitempty"`
	RTT        time.Duration `json:"rtt"`
}

// Recorder accumulates events in memory and flushes them to a JSON
// file in the history directory, one file per process run.
type Recorder struct {
	mu      sync.RWMutex
	enabled bool
	runID   string
	events  []Event
}

// Global recorder instance
var globalRecorder *Recorder
var recorderOnce sync.Once

// GetRecorder returns the global recorder.
func GetRecorder() *Recorder {
	recorderOnce.Do(func() {
		globalRecorder = &Recorder{
			runID: fmt.Sprintf("run_%d", time.Now().Unix()),
		}
	})
	return globalRecorder
}

// SetEnabled toggles recording.
func (r *Recorder) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// Record stores an event and rewrites the run file.
func (r *Recorder) Record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return
	}

	r.events = append(r.events, ev)
	r.flushLocked()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// LastSuccess returns the most recent successful event, if any.
func (r *Recorder) LastSuccess() (Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Success {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// flushLocked writes the run file. Errors are swallowed: history is
// best-effort and must not interfere with syncing.
func (r *Recorder) flushLocked() {
	dataDir, err := config.GetDataDir()
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(r.events, "", "  ")
	if err != nil {
		return
	}

	path := filepath.Join(dataDir, config.HistoryDirName, r.runID+".json")
	os.WriteFile(path, data, 0644)
}
