package twokeymap

import "github.com/mwildt/twokey/skiplist"

type twokeyConfiguration struct {
	capacity int
	level    int
}

type ConfigOption func(*twokeyConfiguration)

func newConfig(options []ConfigOption) twokeyConfiguration {
	config := twokeyConfiguration{
		capacity: 0,
		level:    skiplist.DefaultLevel,
	}
	for _, opt := range options {
		opt(&config)
	}
	return config
}

// WithCapacity preallocates room for value entries.
func WithCapacity(value int) ConfigOption {
	return func(c *twokeyConfiguration) {
		if value > 0 {
			c.capacity = value
		}
	}
}

// WithLevel sets the skiplist height of a SortedMap. It is ignored by Map.
func WithLevel(value int) ConfigOption {
	return func(c *twokeyConfiguration) {
		if value > 0 {
			c.level = value
		}
	}
}

// WithExpectedSize sizes capacity and skiplist height for value entries.
func WithExpectedSize(value int) ConfigOption {
	return func(c *twokeyConfiguration) {
		if value > 0 {
			c.capacity = value
			c.level = skiplist.Height(value, 0.5)
		}
	}
}
