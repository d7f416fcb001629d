package timezone

import (
	"fmt"
	"lessons/config"
	"sync/atomic"
	"time"
	_ "time/tzdata" //nolint:revive

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone

	if err := Use(name); err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load APP_TIMEZONE, falling back to UTC")

		return
	}

	log.Info().Str("timezone", Location().String()).Msg("Application timezone initialized")
}

// Use switches the application timezone. An empty name selects UTC.
func Use(name string) error {
	if name == "" {
		appLocation.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation.Store(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	appLocation.Store(loc)

	return nil
}

func Location() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

// Parse reads value in the application timezone when layout carries no offset.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
