package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name      string
		opening   types.TimeString
		closing   types.TimeString
		duration  domain.SlotDuration
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "full day hourly",
			opening:   "06:00",
			closing:   "21:00",
			duration:  domain.SlotOneHour,
			wantCount: 15,
			wantFirst: "06:00",
			wantLast:  "20:00",
		},
		{
			name:      "full day half-hourly",
			opening:   "06:00",
			closing:   "21:00",
			duration:  domain.SlotThirtyMinutes,
			wantCount: 30,
			wantFirst: "06:00",
			wantLast:  "20:30",
		},
		{
			name:      "overshooting slot is dropped not truncated",
			opening:   "09:00",
			closing:   "10:30",
			duration:  domain.SlotOneHour,
			wantCount: 1,
			wantFirst: "09:00",
			wantLast:  "09:00",
		},
		{
			name:      "slot ending exactly at closing is kept",
			opening:   "09:00",
			closing:   "10:00",
			duration:  domain.SlotOneHour,
			wantCount: 1,
			wantFirst: "09:00",
			wantLast:  "09:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.opening, tt.closing, tt.duration)
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			assert.Equal(t, tt.wantFirst, slots[0].StartTime.String())
			assert.Equal(t, tt.wantLast, slots[len(slots)-1].StartTime.String())

			// Contiguous, non-overlapping, fixed length.
			for i, s := range slots {
				startMin, err := s.StartTime.Minutes()
				require.NoError(t, err)
				endMin, err := s.EndTime.Minutes()
				require.NoError(t, err)
				assert.Equal(t, tt.duration.Minutes(), endMin-startMin)
				if i > 0 {
					assert.Equal(t, slots[i-1].EndTime, s.StartTime)
				}
			}
		})
	}
}

func TestGenerateSlotsLabels(t *testing.T) {
	slots, err := GenerateSlots("11:00", "19:00", domain.SlotOneHour)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	assert.Equal(t, domain.DayPartMorning, slots[0].Label)   // 11:00
	assert.Equal(t, domain.DayPartAfternoon, slots[1].Label) // 12:00
	assert.Equal(t, domain.DayPartAfternoon, slots[6].Label) // 17:00
	assert.Equal(t, domain.DayPartEvening, slots[7].Label)   // 18:00
}

func TestGenerateSlotsInvalidConfig(t *testing.T) {
	_, err := GenerateSlots("18:00", "09:00", domain.SlotOneHour)
	assert.ErrorIs(t, err, ErrInvalidScheduleConfig)

	_, err = GenerateSlots("09:00", "09:00", domain.SlotOneHour)
	assert.ErrorIs(t, err, ErrInvalidScheduleConfig)

	_, err = GenerateSlots("09:00", "18:00", domain.SlotDuration(45))
	assert.ErrorIs(t, err, ErrInvalidSlotDuration)
}

func TestGenerateSlotsIdempotent(t *testing.T) {
	first, err := GenerateSlots("08:00", "18:00", domain.SlotThirtyMinutes)
	require.NoError(t, err)
	second, err := GenerateSlots("08:00", "18:00", domain.SlotThirtyMinutes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
