package ui

import (
	"os"
	"testing"
	"time"

	"BreakTimer/config"
	"BreakTimer/control"
	"BreakTimer/i18n"
	"BreakTimer/timer"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	i18n.SetLang("en")
	os.Exit(m.Run())
}

type fakeApp struct {
	commands []control.CommandType
	runes    []rune
}

func (f *fakeApp) EnqueueCommand(cmd control.Command) {
	f.commands = append(f.commands, cmd.Type)
	if cmd.Reply != nil {
		cmd.Reply <- nil
	}
}

func (f *fakeApp) HandleKeyRune(r rune) {
	f.runes = append(f.runes, r)
}

func TestNewTimerViewStartsStopped(t *testing.T) {
	test.NewApp()
	v := NewTimerView(&fakeApp{})

	assert.False(t, v.StartButton().Disabled())
	assert.True(t, v.StopButton().Disabled())
	assert.Equal(t, "Start Notifications", v.StartButton().Text)
	assert.Equal(t, "Stop Notifications", v.StopButton().Text)
	assert.Equal(t, `Click "Start" to begin.`, v.statusLabel.Text)
	assert.False(t, v.nextLabel.Visible())
}

func TestButtonsEnqueueCommands(t *testing.T) {
	test.NewApp()
	a := &fakeApp{}
	v := NewTimerView(a)

	test.Tap(v.StartButton())
	v.Update(timer.Snapshot{State: timer.StateRunning, Status: "running"})
	test.Tap(v.StopButton())

	assert.Equal(t, []control.CommandType{control.CmdStart, control.CmdStop}, a.commands)
}

func TestDisabledButtonIgnoresTap(t *testing.T) {
	test.NewApp()
	a := &fakeApp{}
	v := NewTimerView(a)

	test.Tap(v.StopButton())

	assert.Empty(t, a.commands)
}

func TestUpdateRunning(t *testing.T) {
	test.NewApp()
	v := NewTimerView(&fakeApp{})
	next := time.Date(2026, 3, 2, 9, 15, 0, 0, time.Local)

	v.Update(timer.Snapshot{
		State:  timer.StateRunning,
		Status: "Notifications are active. I will notify you every 15 minutes.",
		Period: 15 * time.Minute,
		NextAt: next,
	})

	assert.True(t, v.StartButton().Disabled())
	assert.False(t, v.StopButton().Disabled())
	assert.Equal(t, "Notifications are active. I will notify you every 15 minutes.", v.statusLabel.Text)
	require.True(t, v.nextLabel.Visible())
	assert.Equal(t, "Next reminder at 09:15", v.nextLabel.Text)

	v.Update(timer.Snapshot{State: timer.StateStopped, Status: "stopped"})
	assert.False(t, v.StartButton().Disabled())
	assert.True(t, v.StopButton().Disabled())
	assert.False(t, v.nextLabel.Visible())
}

func TestCreateMainWindow(t *testing.T) {
	fyneApp := test.NewApp()
	a := &fakeApp{}
	v := NewTimerView(a)
	cfg := config.WindowConfig{Title: "Notification Timer", Width: 800, Height: 600}

	w := CreateMainWindow(a, fyneApp, cfg, v)
	defer w.Close()

	assert.Equal(t, "Notification Timer", w.Title())
	assert.Equal(t, v.Content(), w.Content())

	w.Canvas().OnTypedRune()(' ')
	assert.Equal(t, []rune{' '}, a.runes)
}

func TestCustomThemeColors(t *testing.T) {
	th := NewCustomTheme()
	assert.Equal(t, startColor, th.Color(theme.ColorNamePrimary, theme.VariantLight))
	assert.Equal(t, stopColor, th.Color(theme.ColorNameError, theme.VariantDark))
	assert.NotNil(t, th.Color(theme.ColorNameBackground, theme.VariantLight))
}
