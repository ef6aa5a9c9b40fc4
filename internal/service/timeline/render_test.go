package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourlystay/HS-OpsService/internal/domain"
)

func at(t *testing.T, hhmm string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", "2026-09-01 "+hhmm)
	require.NoError(t, err)
	return ts
}

func TestRender_ProportionalWeights(t *testing.T) {
	// Бронь 40 минут и свободный промежуток 80 минут: веса 40 и 80,
	// блок брони вдвое уже свободного
	rooms := []domain.RoomTimeline{{
		RoomID:     1,
		RoomNumber: "101",
		Segments: []domain.Segment{
			{Start: at(t, "10:00"), End: at(t, "10:40"), Kind: domain.SegmentBooked},
			{Start: at(t, "10:40"), End: at(t, "12:00"), Kind: domain.SegmentFree},
		},
	}}

	lanes := Render(rooms)

	require.Len(t, lanes, 1)
	require.Len(t, lanes[0].Blocks, 2)
	assert.Equal(t, 40, lanes[0].Blocks[0].Weight)
	assert.Equal(t, 80, lanes[0].Blocks[1].Weight)
	assert.Equal(t, 120, lanes[0].TotalWeight)
}

func TestRender_TooltipFormat(t *testing.T) {
	rooms := []domain.RoomTimeline{{
		RoomID: 1,
		Segments: []domain.Segment{
			{Start: at(t, "09:40"), End: at(t, "11:00"), Kind: domain.SegmentBooked},
		},
	}}

	lanes := Render(rooms)

	require.Len(t, lanes[0].Blocks, 1)
	assert.Equal(t, "09:40 - 11:00", lanes[0].Blocks[0].Tooltip)
	assert.Equal(t, "Booked", lanes[0].Blocks[0].Label)
}

func TestRender_EmptyRoomGetsPlaceholder(t *testing.T) {
	rooms := []domain.RoomTimeline{{RoomID: 7, RoomNumber: "707"}}

	lanes := Render(rooms)

	require.Len(t, lanes, 1)
	require.Len(t, lanes[0].Blocks, 1)

	block := lanes[0].Blocks[0]
	assert.True(t, block.Placeholder)
	assert.Equal(t, domain.PlaceholderLabel, block.Label)
	assert.Equal(t, 1, block.Weight)
}

func TestRender_ShortSegmentsStayClickable(t *testing.T) {
	rooms := []domain.RoomTimeline{{
		RoomID: 1,
		Segments: []domain.Segment{
			{Start: at(t, "10:00"), End: at(t, "10:01"), Kind: domain.SegmentBooked},
			{Start: at(t, "10:01"), End: at(t, "11:01"), Kind: domain.SegmentFree},
		},
	}}

	lanes := Render(rooms)

	require.Len(t, lanes[0].Blocks, 2)
	assert.Equal(t, domain.MinBlockWeight, lanes[0].Blocks[0].Weight)
	assert.Equal(t, 60, lanes[0].Blocks[1].Weight)
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	segments := []domain.Segment{
		{Start: at(t, "10:00"), End: at(t, "11:00"), Kind: domain.SegmentFree},
	}
	rooms := []domain.RoomTimeline{{RoomID: 1, Segments: segments}}

	Render(rooms)

	assert.Equal(t, at(t, "10:00"), segments[0].Start)
	assert.Equal(t, domain.SegmentFree, segments[0].Kind)
}
