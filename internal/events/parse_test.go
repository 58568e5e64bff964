package events_test

import (
	"testing"
	"time"

	"github.com/establishmentmg/minigames-bot/internal/events"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

func TestFormatEvent(t *testing.T) {
	assert.Equal(t, "Cooking (Date: 7/25)", events.FormatEvent("Cooking", "7/25"))
}

func TestStripDate(t *testing.T) {
	assert.Equal(t, "Cooking", events.StripDate("Cooking (Date: 7/25)"))
	assert.Equal(t, "Cooking", events.StripDate("Cooking"))
	assert.Equal(t, "Battle Royale", events.StripDate("Battle Royale (Date: 7/25/2025)"))
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		name  string
		event string
		want  time.Time
	}{
		{"month and day default to current year", "Cooking (Date: 7/25)", time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)},
		{"full year", "Karts (Date: 7/25/2024)", time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)},
		{"two-digit year", "Karts (Date: 7/25/24)", time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)},
		{"whitespace after colon", "Karts (Date:  12/1)", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"no date fragment", "Cooking", time.Time{}},
		{"out-of-range month", "Cooking (Date: 13/25)", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, events.ParseEventDate(tt.event, now))
		})
	}
}

func TestIsBattleRoyale(t *testing.T) {
	assert.True(t, events.IsBattleRoyale("Battle Royale (Date: 7/25)"))
	assert.True(t, events.IsBattleRoyale("battle royal (Date: 7/25)"))
	assert.False(t, events.IsBattleRoyale("Cooking (Date: 7/25)"))
}
