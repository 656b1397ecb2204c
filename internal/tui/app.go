// Package tui provides the terminal user interface: a status panel,
// region/city pickers, and a live activity log.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cyberman/SyncTime/internal/config"
	"github.com/cyberman/SyncTime/internal/logger"
	"github.com/cyberman/SyncTime/internal/syncer"
	"github.com/cyberman/SyncTime/internal/tz"
)

// Colors
var (
	ColorPrimary   = tcell.ColorDodgerBlue
	ColorSuccess   = tcell.ColorLimeGreen
	ColorWarning   = tcell.ColorOrange
	ColorSecondary = tcell.ColorLightGray
)

// App represents the TUI application.
type App struct {
	app     *tview.Application
	cfg     *config.Config
	manager *syncer.Manager
	engine  *tz.Engine
	log     *logger.Logger

	// UI components
	header    *tview.TextView
	statusBox *tview.TextView
	zoneForm  *tview.Form
	zoneInfo  *tview.TextView
	logView   *tview.TextView
	footer    *tview.TextView

	cityDrop *tview.DropDown
	logChan  chan logger.LogEntry
	stopTick chan struct{}
}

// NewApp creates the TUI application.
func NewApp(cfg *config.Config, manager *syncer.Manager, engine *tz.Engine) *App {
	a := &App{
		app:      tview.NewApplication(),
		cfg:      cfg,
		manager:  manager,
		engine:   engine,
		log:      logger.GetLogger(),
		stopTick: make(chan struct{}),
	}
	a.setupUI()
	return a
}

// Run starts the TUI event loop and blocks until quit.
func (a *App) Run() error {
	a.logChan = a.log.Subscribe()
	go a.followLog()
	go a.tickStatus()

	err := a.app.Run()

	close(a.stopTick)
	a.log.Unsubscribe(a.logChan)
	return err
}

// setupUI initializes all UI components.
func (a *App) setupUI() {
	a.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.header.SetText("[::b]SyncTime[-:-:-] - SNTP clock synchronization")
	a.header.SetBackgroundColor(ColorPrimary)
	a.header.SetTextColor(tcell.ColorWhite)

	a.statusBox = tview.NewTextView().SetDynamicColors(true)
	a.statusBox.SetBorder(true)
	a.statusBox.SetTitle(" Sync Status ")
	a.statusBox.SetBorderColor(ColorPrimary)

	a.zoneInfo = tview.NewTextView().SetDynamicColors(true)
	a.zoneInfo.SetBorder(true)
	a.zoneInfo.SetTitle(" Timezone ")
	a.zoneInfo.SetBorderColor(ColorSuccess)

	a.createZoneForm()

	a.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	a.logView.SetBorder(true)
	a.logView.SetTitle(" Activity ")
	a.logView.SetBorderColor(ColorWarning)
	for _, entry := range a.log.GetEntries(50) {
		fmt.Fprintln(a.logView, logger.FormatEntry(entry))
	}

	a.footer = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.footer.SetText(" [yellow]F5[white] Sync Now │ [yellow]Ctrl+S[white] Save Config │ [yellow]F12[white] Quit ")
	a.footer.SetBackgroundColor(tcell.ColorDarkSlateGray)

	topRow := tview.NewFlex().
		AddItem(a.statusBox, 0, 2, false).
		AddItem(a.zoneInfo, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(topRow, 9, 0, false).
		AddItem(a.zoneForm, 5, 0, true).
		AddItem(a.logView, 0, 1, false).
		AddItem(a.footer, 1, 0, false)

	a.app.SetInputCapture(a.handleGlobalKeys)
	a.app.SetRoot(root, true)

	a.updateStatus()
	a.updateZoneInfo()
}

// createZoneForm builds the region and city pickers.
func (a *App) createZoneForm() {
	regions := a.engine.Regions()
	regionOpts := append([]string{"UTC"}, regions...)

	regionIdx, cityIdx := 0, 0
	if ent := a.engine.FindByName(a.cfg.GetZone()); ent != nil {
		for i, r := range regions {
			if r == ent.Region {
				regionIdx = i + 1
				break
			}
		}
		for i, c := range a.engine.CitiesForRegion(ent.Region) {
			if c.Name == ent.Name {
				cityIdx = i
				break
			}
		}
	}

	a.cityDrop = tview.NewDropDown().SetLabel("City   ")

	regionDrop := tview.NewDropDown().
		SetLabel("Region ").
		SetOptions(regionOpts, func(text string, index int) {
			a.populateCities(text, 0)
		})

	a.zoneForm = tview.NewForm().
		AddFormItem(regionDrop).
		AddFormItem(a.cityDrop)
	a.zoneForm.SetBorder(true)
	a.zoneForm.SetTitle(" Zone Selection ")
	a.zoneForm.SetBorderColor(ColorSecondary)

	regionDrop.SetCurrentOption(regionIdx)
	if regionIdx > 0 {
		a.populateCities(regions[regionIdx-1], cityIdx)
	}
}

// populateCities fills the city picker for a region. "UTC" clears the
// configured zone.
func (a *App) populateCities(region string, selected int) {
	if region == "UTC" {
		a.cityDrop.SetOptions(nil, nil)
		a.cfg.SetZone("")
		a.updateZoneInfo()
		return
	}

	cities := a.engine.CitiesForRegion(region)
	opts := make([]string, len(cities))
	for i, c := range cities {
		opts[i] = c.City
	}

	a.cityDrop.SetOptions(opts, func(text string, index int) {
		if index >= 0 && index < len(cities) {
			a.cfg.SetZone(cities[index].Name)
			a.updateZoneInfo()
		}
	})
	if len(cities) > 0 {
		if selected < 0 || selected >= len(cities) {
			selected = 0
		}
		a.cityDrop.SetCurrentOption(selected)
	}
}

// handleGlobalKeys handles application-wide keybindings.
func (a *App) handleGlobalKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF5:
		a.manager.ForceSync()
		return nil
	case tcell.KeyCtrlS:
		if err := a.cfg.Save(); err != nil {
			a.log.Errorf("CONFIG", "Save failed: %v", err)
		} else {
			a.log.Info("CONFIG", "Configuration saved")
		}
		return nil
	case tcell.KeyF12, tcell.KeyEscape:
		a.app.Stop()
		return nil
	}
	return event
}

// followLog appends subscribed log entries to the activity view.
func (a *App) followLog() {
	for entry := range a.logChan {
		e := entry
		a.app.QueueUpdateDraw(func() {
			fmt.Fprintln(a.logView, logger.FormatEntry(e))
			a.logView.ScrollToEnd()
		})
	}
}

// tickStatus refreshes the status panel periodically.
func (a *App) tickStatus() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.app.QueueUpdateDraw(a.updateStatus)
		case <-a.stopTick:
			return
		}
	}
}

// updateStatus redraws the sync status panel.
func (a *App) updateStatus() {
	st := a.manager.GetStatus()

	if !st.Synchronized {
		msg := "waiting for first sync"
		if st.LastError != "" {
			msg = st.LastError
		}
		a.statusBox.SetText(fmt.Sprintf(
			"\n  [orange]o NOT SYNCHRONIZED[white]\n\n  Server: [cyan]%s[white]\n  %s",
			a.cfg.ServerAddr(), msg))
		return
	}

	next := "-"
	if !st.NextSync.IsZero() {
		next = st.NextSync.Format("15:04:05")
	}
	a.statusBox.SetText(fmt.Sprintf(
		"\n  [green]* SYNCHRONIZED[white]\n\n  Server:     [cyan]%s[white]\n  Local time: %s\n  Last sync:  %s (RTT %v)\n  Next sync:  %s",
		st.Server,
		syncer.FormatLocal(st.LocalSecs),
		st.LastSync.Format("15:04:05"), st.RTT.Round(time.Millisecond),
		next))
}

// updateZoneInfo redraws the timezone panel.
func (a *App) updateZoneInfo() {
	ent := a.engine.FindByName(a.cfg.GetZone())
	name := "UTC"
	if ent != nil {
		name = ent.Name
	}
	a.zoneInfo.SetText(fmt.Sprintf("\n  Zone: [cyan]%s[white]\n  %s", name, tz.FormatOffset(ent)))
}
