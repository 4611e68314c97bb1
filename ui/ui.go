package ui

import (
	"image/color"
	"time"

	"BreakTimer/config"
	"BreakTimer/control"
	"BreakTimer/i18n"
	"BreakTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// UI constants
const (
	TitleSize  float32 = 28.0
	CardWidth          = 360
	CardGap            = 12
	ReplyWait          = 200 * time.Millisecond
	CornerSize float32 = 12.0
)

// App is what the view needs from the application.
type App interface {
	EnqueueCommand(cmd control.Command)
	HandleKeyRune(rune)
}

// TimerView is the single interactive view: a title, the status text and
// the Start/Stop buttons.
type TimerView struct {
	titleText   *canvas.Text
	statusLabel *widget.Label
	nextLabel   *widget.Label
	startButton *widget.Button
	stopButton  *widget.Button
	content     fyne.CanvasObject
}

// NewTimerView builds the view in the stopped state.
func NewTimerView(a App) *TimerView {
	v := &TimerView{}

	v.titleText = canvas.NewText(i18n.T("Notification Timer"), theme.Color(theme.ColorNameForeground))
	v.titleText.TextStyle.Bold = true
	v.titleText.TextSize = TitleSize
	v.titleText.Alignment = fyne.TextAlignCenter

	v.statusLabel = widget.NewLabel(i18n.T(`Click "Start" to begin.`))
	v.statusLabel.Alignment = fyne.TextAlignCenter
	v.statusLabel.Wrapping = fyne.TextWrapWord

	v.nextLabel = widget.NewLabel("")
	v.nextLabel.Alignment = fyne.TextAlignCenter
	v.nextLabel.TextStyle.Italic = true
	v.nextLabel.Hide()

	v.startButton = widget.NewButton(i18n.T("Start Notifications"), func() {
		send(a, control.CmdStart)
	})
	v.startButton.Importance = widget.HighImportance

	v.stopButton = widget.NewButton(i18n.T("Stop Notifications"), func() {
		send(a, control.CmdStop)
	})
	v.stopButton.Importance = widget.DangerImportance
	v.stopButton.Disable()

	sizeEnforcer := canvas.NewRectangle(color.Transparent)
	sizeEnforcer.SetMinSize(fyne.NewSize(CardWidth, 0))

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, CardGap))

	card := container.NewVBox(
		sizeEnforcer,
		v.titleText,
		v.statusLabel,
		v.nextLabel,
		gap,
		v.startButton,
		v.stopButton,
	)

	background := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	background.CornerRadius = CornerSize

	v.content = container.New(layout.NewCenterLayout(),
		container.NewStack(background, container.NewPadded(card)))
	return v
}

// send enqueues cmd and waits briefly for the loop to apply it so the
// view refresh that follows sees the new state.
func send(a App, t control.CommandType) {
	reply := make(chan error, 1)
	a.EnqueueCommand(control.Command{Type: t, Reply: reply})
	select {
	case <-reply:
	case <-time.After(ReplyWait):
	}
}

// Content returns the view's root object.
func (v *TimerView) Content() fyne.CanvasObject {
	return v.content
}

// Update renders s. Call it on the UI goroutine.
func (v *TimerView) Update(s timer.Snapshot) {
	v.statusLabel.SetText(s.Status)

	running := s.State == timer.StateRunning
	if running {
		v.startButton.Disable()
		v.stopButton.Enable()
	} else {
		v.startButton.Enable()
		v.stopButton.Disable()
	}

	if running && !s.NextAt.IsZero() {
		v.nextLabel.SetText(i18n.Tf("Next reminder at %s", timer.FormatClock(s.NextAt)))
		v.nextLabel.Show()
	} else {
		v.nextLabel.Hide()
	}
}

// UpdateDisplay schedules Update on the UI goroutine. Safe from any
// goroutine.
func (v *TimerView) UpdateDisplay(s timer.Snapshot) {
	fyne.Do(func() {
		v.Update(s)
	})
}

// StartButton returns the Start button.
func (v *TimerView) StartButton() *widget.Button {
	return v.startButton
}

// StopButton returns the Stop button.
func (v *TimerView) StopButton() *widget.Button {
	return v.stopButton
}

// CreateMainWindow creates the fixed-size host window and installs v.
func CreateMainWindow(a App, fyneApp fyne.App, cfg config.WindowConfig, v *TimerView) fyne.Window {
	title := cfg.Title
	if title == "" {
		title = fyneApp.Metadata().Name
	}
	if title == "" {
		title = i18n.T("Notification Timer")
	}
	w := fyneApp.NewWindow(title)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)
	w.SetContent(v.Content())
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	return w
}
