package constant

// Event Loop
const (
	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Audio
const (
	// ChimeFrequencyHz is the spawn-burst chime tone
	ChimeFrequencyHz = 880
)
