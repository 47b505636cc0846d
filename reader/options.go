package reader

import "github.com/go-e57/e57reader/internal/options"

// Option configures a Reader at OpenReader time.
type Option = options.Option[*config]

type config struct {
	cacheSlots int
}

func defaultConfig() *config {
	return &config{cacheSlots: 32}
}

// WithCacheSlots overrides the packet cache's slot count
// (cache.DefaultSlotCount). Values below 1 are ignored.
func WithCacheSlots(n int) Option {
	return options.NoError[*config](func(c *config) {
		if n >= 1 {
			c.cacheSlots = n
		}
	})
}
