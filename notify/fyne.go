package notify

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"
)

// PermissionKey is the preferences key holding the stored decision.
const PermissionKey = "notifications.permission"

// ErrUnsupported is returned by Show when no notification capability exists.
var ErrUnsupported = errors.New("notifications not supported")

// PromptFunc asks the user whether notifications are allowed and reports
// the answer to done. It must not block the caller.
type PromptFunc func(done func(granted bool))

// FyneNotifier delivers notifications through a Fyne application and keeps
// the permission decision in the application preferences.
type FyneNotifier struct {
	app    fyne.App
	prompt PromptFunc
	ask    bool
	sound  Player
	logger *log.Logger

	mu      sync.Mutex
	waiters []func(Permission)
	asking  bool
}

// Options configures a FyneNotifier.
type Options struct {
	// AskPermission makes the notifier prompt before the first delivery.
	// When false every notification is treated as granted.
	AskPermission bool
	Prompt        PromptFunc
	Sound         Player
	Logger        *log.Logger
}

// NewFyneNotifier creates a notifier bound to app.
func NewFyneNotifier(app fyne.App, opts Options) *FyneNotifier {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &FyneNotifier{
		app:    app,
		prompt: opts.Prompt,
		ask:    opts.AskPermission,
		sound:  opts.Sound,
		logger: logger,
	}
}

// Supported reports whether there is an application to deliver through.
func (n *FyneNotifier) Supported() bool {
	return n.app != nil
}

// Permission returns the stored decision.
func (n *FyneNotifier) Permission() Permission {
	if !n.ask {
		return PermissionGranted
	}
	if n.app == nil {
		return PermissionDenied
	}
	return ParsePermission(n.app.Preferences().String(PermissionKey))
}

// RequestPermission prompts once and fans the answer out to every waiter.
// A decided permission is reported immediately without prompting. The
// stored decision is read under mu; resolve writes it before clearing
// asking, so a request never opens a second prompt for a settled answer.
func (n *FyneNotifier) RequestPermission(done func(Permission)) {
	n.mu.Lock()
	if p := n.Permission(); p != PermissionDefault || n.prompt == nil {
		n.mu.Unlock()
		if p == PermissionDefault {
			p = PermissionDenied
		}
		if done != nil {
			done(p)
		}
		return
	}
	n.waiters = append(n.waiters, done)
	if n.asking {
		n.mu.Unlock()
		return
	}
	n.asking = true
	n.mu.Unlock()

	n.logger.Debug("requesting notification permission")
	n.prompt(n.resolve)
}

func (n *FyneNotifier) resolve(granted bool) {
	p := PermissionDenied
	if granted {
		p = PermissionGranted
	}
	n.app.Preferences().SetString(PermissionKey, p.String())
	n.logger.Info("notification permission decided", "permission", p)

	n.mu.Lock()
	waiters := n.waiters
	n.waiters = nil
	n.asking = false
	n.mu.Unlock()

	for _, w := range waiters {
		if w != nil {
			w(p)
		}
	}
}

// ResetPermission forgets the stored decision so the next request prompts.
func (n *FyneNotifier) ResetPermission() {
	if n.app == nil {
		return
	}
	n.app.Preferences().RemoveValue(PermissionKey)
}

// Show sends the notification and plays the chime if one is configured.
func (n *FyneNotifier) Show(msg Notification) error {
	if n.app == nil {
		return ErrUnsupported
	}
	n.app.SendNotification(fyne.NewNotification(msg.Title, msg.Body))
	if n.sound != nil {
		n.sound.Play()
	}
	return nil
}
