// Package timer contains the break reminder state machine: a Session that
// is either stopped or running and, while running, owns exactly one
// repeating reminder.
//
// Maintenance notes:
//   - Session fields are guarded by mu. Reminder callbacks arrive on the
//     clock's goroutine while Start/Stop come from the application command
//     loop, so every read-modify-write of running/handle happens under mu.
//   - Notifications are emitted after mu is released. A Notifier may call
//     back into the session (status updates, permission continuations).
//   - Teardown must run on every exit path of the owning view. The host
//     shell defers it.
package timer

import (
	"sync"
	"time"

	"BreakTimer/clock"
	"BreakTimer/i18n"
	"BreakTimer/notify"

	"github.com/charmbracelet/log"
)

// DefaultPeriod is the reminder interval used when none is configured.
const DefaultPeriod = 15 * time.Minute

// TimerState is the externally visible state of a Session.
type TimerState int

const (
	StateStopped TimerState = iota
	StateRunning
)

func (s TimerState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Options configures a Session.
type Options struct {
	Period   time.Duration
	Clock    clock.Clock
	Notifier notify.Notifier
	Logger   *log.Logger
	// OnChange is called with a fresh snapshot after every state or
	// status change. It runs without the session lock held.
	OnChange func(Snapshot)
}

// Session is the runtime state of the reminder for one view.
type Session struct {
	period   time.Duration
	clock    clock.Clock
	notifier notify.Notifier
	logger   *log.Logger
	onChange func(Snapshot)

	// mutable state - protect with mu
	mu      sync.Mutex
	running bool
	handle  *interval
	status  string
	nextAt  time.Time
}

// NewSession creates a stopped session.
func NewSession(opts Options) *Session {
	s := &Session{
		period:   opts.Period,
		clock:    opts.Clock,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		onChange: opts.OnChange,
		status:   i18n.T(`Click "Start" to begin.`),
	}
	if s.period <= 0 {
		s.period = DefaultPeriod
	}
	if s.clock == nil {
		s.clock = clock.Real()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Start activates periodic reminders. It is ignored while running.
func (s *Session) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Debug("start ignored: already running")
		return
	}

	if s.handle != nil {
		s.handle.stop()
		s.handle = nil
	}

	period := FormatInterval(s.period)
	label := FormatTimerLabel(s.period)
	s.running = true
	s.status = i18n.Tf("Notifications are active. I will notify you every %s.", period)
	s.handle = startInterval(s.clock, s.period, s.remind)
	s.nextAt = s.clock.Now().Add(s.period)
	s.mu.Unlock()

	s.logger.Info("reminders started", "period", s.period)
	s.changed()
	if s.notifier != nil && s.notifier.Supported() && s.notifier.Permission() != notify.PermissionGranted {
		s.notifier.RequestPermission(nil)
	}
	s.showNotification(i18n.T("Notification Timer Activated"), i18n.Tf("The %s timer has started.", label))
}

// Stop cancels periodic reminders. It is ignored while stopped.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		s.logger.Debug("stop ignored: not running")
		return
	}

	s.releaseLocked()
	s.running = false
	s.status = i18n.T(`Notifications stopped. Click "Start" to restart.`)
	label := FormatTimerLabel(s.period)
	s.mu.Unlock()

	s.logger.Info("reminders stopped")
	s.changed()
	s.showNotification(i18n.T("Notification Timer Deactivated"), i18n.Tf("The %s timer has been stopped.", label))
}

// Teardown releases the repeating reminder and leaves the session stopped.
// It emits nothing and leaves the status text alone. Safe to call more than
// once.
func (s *Session) Teardown() {
	s.mu.Lock()
	released := s.handle != nil
	s.releaseLocked()
	s.running = false
	s.mu.Unlock()

	if released {
		s.logger.Debug("session torn down with active reminder")
	}
}

func (s *Session) releaseLocked() {
	if s.handle != nil {
		s.handle.stop()
		s.handle = nil
	}
	s.nextAt = time.Time{}
}

// remind is the repeating action. Fires that race with Stop or Teardown
// find the handle replaced and are dropped.
func (s *Session) remind(iv *interval) {
	s.mu.Lock()
	if !s.running || s.handle != iv {
		s.mu.Unlock()
		return
	}
	s.nextAt = s.clock.Now().Add(s.period)
	period := FormatInterval(s.period)
	s.mu.Unlock()

	s.logger.Debug("break reminder due")
	s.changed()
	s.showNotification(i18n.T("Time to take a break!"), i18n.Tf("It has been %s since you started the timer.", period))
}

// showNotification delivers best-effort. Nothing is returned: an absent
// capability becomes a status message and a denial drops the notification.
func (s *Session) showNotification(title, body string) {
	if s.notifier == nil || !s.notifier.Supported() {
		s.logger.Warn("notifications not supported")
		s.setStatus(i18n.T("Notifications not supported on this system."))
		return
	}

	msg := notify.Notification{Title: title, Body: body}
	switch s.notifier.Permission() {
	case notify.PermissionGranted:
		s.deliver(msg)
	case notify.PermissionDenied:
		s.logger.Debug("notification dropped: permission denied", "title", title)
	default:
		s.notifier.RequestPermission(func(p notify.Permission) {
			if p == notify.PermissionGranted {
				s.deliver(msg)
				return
			}
			s.logger.Debug("notification dropped: permission not granted", "title", title, "permission", p)
		})
	}
}

func (s *Session) deliver(msg notify.Notification) {
	if err := s.notifier.Show(msg); err != nil {
		s.logger.Warn("failed to show notification", "title", msg.Title, "err", err)
	}
}

func (s *Session) setStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	s.changed()
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}

// Snapshot is a consistent copy of the session for rendering.
type Snapshot struct {
	State  TimerState
	Status string
	Period time.Duration
	// NextAt is when the next reminder fires; zero while stopped.
	NextAt time.Time
}

// Snapshot returns the current state under the session lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := StateStopped
	if s.running {
		state = StateRunning
	}
	return Snapshot{State: state, Status: s.status, Period: s.period, NextAt: s.nextAt}
}

// IsRunning reports whether reminders are active.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// HasInterval reports whether the session currently owns a repeating
// reminder. It is true exactly when IsRunning is.
func (s *Session) HasInterval() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle != nil
}

// Status returns the last user-facing status text.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
