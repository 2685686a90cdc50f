package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bouncepro-reminder/shared/timezone"
)

func TestReminderWindow(t *testing.T) {
	tests := []struct {
		name      string
		utcNow    time.Time
		zone      string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:   "plain offset zone without transition",
			utcNow: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			zone:   "UTC",
			// No transition, so wall-clock and instant arithmetic agree.
			wantStart: time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 11, 13, 0, 0, 0, time.UTC),
		},
		{
			name:   "spring forward shortens the elapsed gap",
			utcNow: time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC),
			zone:   "America/New_York",
			// Local now is 2025-03-08 07:00 EST. Adding 24 wall-clock
			// hours lands on 2025-03-09 07:00, which is EDT because the
			// clocks jumped at 02:00 that morning. 07:00 EDT is 11:00 UTC,
			// only 23 elapsed hours after now.
			wantStart: time.Date(2025, 3, 9, 11, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "fall back stretches the elapsed gap",
			utcNow: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
			zone:   "America/New_York",
			// Local now is 2025-11-01 08:00 EDT. 24 wall-clock hours later
			// is 2025-11-02 08:00 EST, which is 13:00 UTC, 25 elapsed
			// hours after now.
			wantStart: time.Date(2025, 11, 2, 13, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 11, 2, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "unknown zone falls back to instant arithmetic",
			utcNow:    time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC),
			zone:      "Mars/Olympus_Mons",
			wantStart: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 9, 13, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := timezone.ReminderWindow(tt.utcNow, tt.zone, 24, 25)

			assert.True(t, tt.wantStart.Equal(window.Start), "start: want %s, got %s", tt.wantStart, window.Start)
			assert.True(t, tt.wantEnd.Equal(window.End), "end: want %s, got %s", tt.wantEnd, window.End)
		})
	}
}

func TestReminderWindow_SpringForwardMembership(t *testing.T) {
	utcNow := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

	window := timezone.ReminderWindow(utcNow, "America/New_York", 24, 25)

	// 11:30 UTC is 07:30 EDT, inside the local 24-25h band even though it
	// is only 23.5 elapsed hours away.
	assert.True(t, window.Contains(time.Date(2025, 3, 9, 11, 30, 0, 0, time.UTC)))

	// 12:30 UTC would sit inside a naive now+24h..now+25h window but is
	// 08:30 on the local clock, past the band.
	assert.False(t, window.Contains(time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)))

	// A booking later in the afternoon is well clear of the band.
	assert.False(t, window.Contains(time.Date(2025, 3, 9, 17, 0, 0, 0, time.UTC)))
}

func TestWindow_Contains(t *testing.T) {
	window := timezone.Window{
		Start: time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 11, 13, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{
			name: "start is inclusive",
			t:    window.Start,
			want: true,
		},
		{
			name: "end is exclusive",
			t:    window.End,
			want: false,
		},
		{
			name: "interior instant",
			t:    window.Start.Add(30 * time.Minute),
			want: true,
		},
		{
			name: "one nanosecond before start",
			t:    window.Start.Add(-time.Nanosecond),
			want: false,
		},
		{
			name: "one nanosecond before end",
			t:    window.End.Add(-time.Nanosecond),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.Contains(tt.t))
		})
	}
}
