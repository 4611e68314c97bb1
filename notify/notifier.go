// Package notify is the boundary to the platform notification capability.
// The timer decides when to notify; a Notifier decides whether it can and
// how the alert reaches the desktop.
package notify

// Permission is the user's decision about desktop notifications.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "default"
	}
}

// ParsePermission maps a stored value back to a Permission. Unknown values
// are treated as undecided.
func ParsePermission(s string) Permission {
	switch s {
	case "granted":
		return PermissionGranted
	case "denied":
		return PermissionDenied
	default:
		return PermissionDefault
	}
}

// Notification is a transient out-of-window alert.
type Notification struct {
	Title string
	Body  string
}

// Notifier is the notification capability consumed by the timer.
type Notifier interface {
	// Supported reports whether the platform can show notifications at all.
	Supported() bool
	Permission() Permission
	// RequestPermission asks the user asynchronously and reports the
	// outcome to done, which may be nil. Requests made while a prompt is
	// open share its result.
	RequestPermission(done func(Permission))
	Show(n Notification) error
}

// Player plays the sound that accompanies a delivered notification.
type Player interface {
	Play()
}
