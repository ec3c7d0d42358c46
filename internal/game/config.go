package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Raids derive their own
	// sub-seeds from it. A seed of 0 means a time-based seed.
	Seed int64

	// Audio enables synthesized sound cues.
	Audio bool

	// ProfilePath overrides where operator progress is saved. Empty
	// means the default location.
	ProfilePath string
}
