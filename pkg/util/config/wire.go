package config

// Wire holds the defaults for the wire inspection commands.
type Wire struct {
	// Version is the default get response version for encoding.
	Version string

	// LogLocation is the file path of command logging.
	// Default output path is stderr.
	LogLocation string
}
