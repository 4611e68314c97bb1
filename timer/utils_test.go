package timer

import (
	"testing"
	"time"

	"BreakTimer/i18n"

	"github.com/stretchr/testify/assert"
)

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{15 * time.Minute, "15 minutes"},
		{time.Minute, "1 minute"},
		{time.Hour, "1 hour"},
		{90 * time.Minute, "1 hour 30 minutes"},
		{2*time.Hour + time.Second, "2 hours 1 second"},
		{10 * time.Second, "10 seconds"},
		{1500 * time.Millisecond, "1 second"},
		{0, "0 seconds"},
		{-time.Minute, "0 seconds"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatInterval(tt.in), tt.in.String())
	}
}

func TestFormatTimerLabel(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{15 * time.Minute, "15-minute"},
		{time.Hour, "1-hour"},
		{2 * time.Hour, "2-hour"},
		{30 * time.Second, "30-second"},
		{90 * time.Minute, "1 hour 30 minutes"},
		{61 * time.Second, "1 minute 1 second"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimerLabel(tt.in), tt.in.String())
	}

	i18n.SetLang("pt")
	defer i18n.SetLang("en")
	assert.Equal(t, "15 minutos", FormatTimerLabel(15*time.Minute))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:15", FormatClock(time.Date(2026, 1, 1, 9, 15, 42, 0, time.UTC)))
}
