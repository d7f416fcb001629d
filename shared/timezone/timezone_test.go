package timezone_test

import (
	"lessons/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func useZone(t *testing.T, name string) {
	t.Helper()

	previous := timezone.Location().String()

	assert.NoError(t, timezone.Use(name))
	t.Cleanup(func() { _ = timezone.Use(previous) })
}

func TestUse(t *testing.T) {
	useZone(t, "Europe/Zagreb")

	assert.Equal(t, "Europe/Zagreb", timezone.Location().String())
	assert.Equal(t, "Europe/Zagreb", timezone.Now().Location().String())

	assert.Error(t, timezone.Use("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, timezone.Location(), "an unknown zone falls back to UTC")

	assert.NoError(t, timezone.Use(""))
	assert.Equal(t, time.UTC, timezone.Location())
}

func TestParse_LessonDateWithoutOffset(t *testing.T) {
	useZone(t, "America/New_York")

	lessonDate, err := timezone.Parse(time.DateOnly, "2026-10-05")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 5, 4, 0, 0, 0, time.UTC), lessonDate.UTC(), "midnight in New York is 04:00 UTC during DST")
}

func TestFormat_RendersInAppTimezone(t *testing.T) {
	useZone(t, "Asia/Tokyo")

	bookedAt := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-05T18:00:00+09:00", timezone.Format(bookedAt, time.RFC3339))
	assert.True(t, bookedAt.Equal(timezone.ToAppTime(bookedAt)))
}
