package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

func TestResolveOperatingDays(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    domain.DaySet
		wantErr bool
	}{
		{
			name: "everyday keyword",
			raw:  []string{"everyday"},
			want: domain.AllDays,
		},
		{
			name: "everyday keyword case-insensitive",
			raw:  []string{"EveryDay"},
			want: domain.AllDays,
		},
		{
			name: "weekends keyword",
			raw:  []string{"weekends"},
			want: domain.Weekends,
		},
		{
			name: "weekend singular",
			raw:  []string{"weekend"},
			want: domain.Weekends,
		},
		{
			name: "weekdays keyword",
			raw:  []string{"weekdays"},
			want: domain.Weekdays,
		},
		{
			name: "single day name",
			raw:  []string{"Sunday"},
			want: domain.DaySet(0).Add(time.Sunday),
		},
		{
			name: "abbreviated day name",
			raw:  []string{"wed"},
			want: domain.DaySet(0).Add(time.Wednesday),
		},
		{
			name: "explicit list of days",
			raw:  []string{"Monday", "Wednesday", "Friday"},
			want: domain.DaySet(0).Add(time.Monday).Add(time.Wednesday).Add(time.Friday),
		},
		{
			name: "keyword unioned with day names",
			raw:  []string{"weekends", "Monday"},
			want: domain.Weekends.Add(time.Monday),
		},
		{
			name: "weekday and weekend keywords cover the whole week",
			raw:  []string{"weekdays", "weekends"},
			want: domain.AllDays,
		},
		{
			name: "empty config resolves permissively to all days",
			raw:  nil,
			want: domain.AllDays,
		},
		{
			name:    "unknown token",
			raw:     []string{"holidays"},
			wantErr: true,
		},
		{
			name:    "blank token",
			raw:     []string{"  "},
			wantErr: true,
		},
		{
			name:    "one bad token poisons the list",
			raw:     []string{"Monday", "Blursday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOperatingDays(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsOperatingDay(t *testing.T) {
	weekdaysOnly, err := ResolveOperatingDays([]string{"weekdays"})
	require.NoError(t, err)

	// 2025-10-13 is a Monday.
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 5; offset++ {
		assert.True(t, IsOperatingDay(monday.AddDate(0, 0, offset), weekdaysOnly))
	}
	assert.False(t, IsOperatingDay(monday.AddDate(0, 0, 5), weekdaysOnly)) // Saturday
	assert.False(t, IsOperatingDay(monday.AddDate(0, 0, 6), weekdaysOnly)) // Sunday

	everyday, err := ResolveOperatingDays([]string{"everyday"})
	require.NoError(t, err)
	for offset := 0; offset < 7; offset++ {
		assert.True(t, IsOperatingDay(monday.AddDate(0, 0, offset), everyday))
	}
}
