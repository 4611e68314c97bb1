// Package main contains the application wiring and the AppManager which
// owns the window, the timer view and its session.
//
// Maintenance notes / tips:
//   - Concurrency model: the view never touches the session directly. Button
//     taps and key presses enqueue control.Command values that a single
//     command-loop goroutine (see `commandLoop`) applies in order. Reminder
//     callbacks arrive on the clock's goroutine; the session serializes
//     them with its own lock.
//   - `cmdCh` is buffered. EnqueueCommand drops a command when the channel
//     stays full for longer than enqueueTimeout so the UI never blocks.
//   - The session is view-scoped: mountView creates one, unmountView tears it
//     down. On macOS closing the window unmounts and hides it; the tray menu
//     mounts a fresh view. Elsewhere closing the window quits.
package main

import (
	"context"
	"runtime"
	"sync"
	"time"

	"BreakTimer/clock"
	"BreakTimer/config"
	"BreakTimer/control"
	"BreakTimer/i18n"
	"BreakTimer/logging"
	"BreakTimer/notify"
	"BreakTimer/notify/sound"
	"BreakTimer/timer"
	"BreakTimer/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/charmbracelet/log"
)

const enqueueTimeout = 150 * time.Millisecond

// AppManager is the main application struct, holding all state.
type AppManager struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	logger     *log.Logger
	notifier   *notify.FyneNotifier
	clock      clock.Clock

	viewLock sync.Mutex
	view     *ui.TimerView
	session  *timer.Session

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
	loopDone  chan struct{}
}

// NewAppManager creates the application manager and starts its command
// loop. Call Shutdown to stop it.
func NewAppManager(fyneApp fyne.App, cfg *config.Config, logger *log.Logger) *AppManager {
	if logger == nil {
		logger = log.Default()
	}
	a := &AppManager{
		fyneApp: fyneApp,
		cfg:     cfg,
		logger:  logger,
		clock:   clock.Real(),
	}

	var player notify.Player
	if cfg.Notifications.Sound {
		player = sound.NewChime(cfg.Notifications.Volume, logging.With(logger, "chime"))
	}
	a.notifier = notify.NewFyneNotifier(fyneApp, notify.Options{
		AskPermission: cfg.Notifications.AskPermission,
		Prompt:        a.promptPermission,
		Sound:         player,
		Logger:        logging.With(logger, "notify"),
	})

	a.cmdCh = make(chan control.Command, 16)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	a.loopDone = make(chan struct{})
	go a.commandLoop()

	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(enqueueTimeout):
		a.logger.Warn("command queue full, dropping command", "command", cmd.Type)
	}
}

func (a *AppManager) commandLoop() {
	defer close(a.loopDone)
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			if s := a.currentSession(); s != nil {
				switch cmd.Type {
				case control.CmdStart:
					s.Start()
				case control.CmdStop:
					s.Stop()
				}
			}
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (a *AppManager) currentSession() *timer.Session {
	a.viewLock.Lock()
	defer a.viewLock.Unlock()
	return a.session
}

// mountView creates a fresh view and session. Any previous session is
// torn down first.
func (a *AppManager) mountView() *ui.TimerView {
	view := ui.NewTimerView(a)
	session := timer.NewSession(timer.Options{
		Period:   a.cfg.Timer.Interval,
		Clock:    a.clock,
		Notifier: a.notifier,
		Logger:   logging.With(a.logger, "timer"),
		OnChange: view.UpdateDisplay,
	})

	a.viewLock.Lock()
	previous := a.session
	a.view, a.session = view, session
	a.viewLock.Unlock()

	if previous != nil {
		previous.Teardown()
	}
	if a.mainWindow != nil {
		a.mainWindow.SetContent(view.Content())
	}
	view.Update(session.Snapshot())
	return view
}

// unmountView tears the current session down. The view keeps its last
// rendering until it is replaced.
func (a *AppManager) unmountView() {
	a.viewLock.Lock()
	session := a.session
	a.session = nil
	a.viewLock.Unlock()

	if session != nil {
		session.Teardown()
	}
}

// HandleKeyRune maps keys to the view's buttons: space toggles, s starts,
// x stops.
func (a *AppManager) HandleKeyRune(r rune) {
	a.viewLock.Lock()
	view := a.view
	a.viewLock.Unlock()
	if view == nil {
		return
	}

	start, stop := view.StartButton(), view.StopButton()
	switch r {
	case ' ':
		if !start.Disabled() {
			start.Tapped(&fyne.PointEvent{})
		} else if !stop.Disabled() {
			stop.Tapped(&fyne.PointEvent{})
		}
	case 's', 'S':
		start.Tapped(&fyne.PointEvent{})
	case 'x', 'X':
		stop.Tapped(&fyne.PointEvent{})
	}
}

// promptPermission asks the user with a confirm dialog on the main window.
func (a *AppManager) promptPermission(done func(granted bool)) {
	fyne.Do(func() {
		if a.mainWindow == nil {
			done(false)
			return
		}
		dialog.ShowConfirm(
			i18n.T("Allow notifications"),
			i18n.T("Allow BreakTimer to show desktop notifications?"),
			done,
			a.mainWindow,
		)
	})
}

// Run builds the window and blocks until the application quits. The
// session is torn down on every exit path.
func (a *AppManager) Run() {
	defer a.Shutdown()

	view := a.mountView()
	w := ui.CreateMainWindow(a, a.fyneApp, a.cfg.Window, view)
	a.mainWindow = w

	if runtime.GOOS == "darwin" {
		a.stayResident(w)
	} else {
		w.SetOnClosed(a.unmountView)
	}

	w.ShowAndRun()
}

// stayResident keeps the process alive when the window closes, the way
// macOS applications do, and offers a tray menu to bring it back.
func (a *AppManager) stayResident(w fyne.Window) {
	w.SetCloseIntercept(func() {
		a.unmountView()
		w.Hide()
	})

	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		a.logger.Debug("no system tray available")
		return
	}
	menu := fyne.NewMenu(i18n.T("Notification Timer"),
		fyne.NewMenuItem(i18n.T("Show"), func() {
			a.viewLock.Lock()
			mounted := a.session != nil
			a.viewLock.Unlock()
			if !mounted {
				a.mountView()
			}
			w.Show()
		}),
	)
	quit := fyne.NewMenuItem(i18n.T("Quit"), a.fyneApp.Quit)
	quit.IsQuit = true
	menu.Items = append(menu.Items, fyne.NewMenuItemSeparator(), quit)
	desk.SetSystemTrayMenu(menu)
}

// Shutdown tears down the session and stops the command loop.
func (a *AppManager) Shutdown() {
	a.unmountView()
	if a.cmdCancel != nil {
		a.cmdCancel()
		<-a.loopDone
	}
}
