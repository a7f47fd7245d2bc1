package colorscheme

import (
	"context"
	"time"

	"github.com/vybe/themesync/internal/application/port"
	"github.com/vybe/themesync/internal/logging"
)

// DefaultPollInterval is how often Watch re-samples detectors.
const DefaultPollInterval = 5 * time.Second

// Watch re-samples the resolver every interval until ctx is done. Changes are
// delivered through the resolver's OnChange listeners.
func Watch(ctx context.Context, resolver port.ColorSchemeResolver, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	log := logging.FromContext(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pref := resolver.Refresh()
			log.Trace().
				Bool("known", pref.Known).
				Bool("prefers_dark", pref.PrefersDark).
				Str("source", pref.Source).
				Msg("system color scheme sampled")
		}
	}
}
