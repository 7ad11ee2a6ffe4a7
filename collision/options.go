package collision

// Option configures a QuadTree or Detector during creation.
//
// Example:
//
//	d := collision.NewDetector(extent, collision.WithMaxDepth(6))
type Option func(*config)

type config struct {
	ratio    float64
	maxDepth int
}

func defaultConfig() config {
	return config{
		ratio:    DefaultRatio,
		maxDepth: DefaultMaxDepth,
	}
}

// WithRatio sets the child-to-parent size ratio used when splitting nodes.
// Values outside (0.5, 1) are ignored.
func WithRatio(ratio float64) Option {
	return func(c *config) {
		if ratio > 0.5 && ratio < 1 {
			c.ratio = ratio
		}
	}
}

// WithMaxDepth sets the maximum depth of the tree. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}
