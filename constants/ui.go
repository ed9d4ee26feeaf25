package constants

// Scoreboard & Name Entry
const (
	// MaxNameLength is the longest player name accepted at the save prompt
	MaxNameLength = 12

	// DefaultScoreboardPath is the text scoreboard file relative to the working directory
	DefaultScoreboardPath = "scoreboard.txt"

	// ScoreboardRanked is how many leading entries get a rank number
	ScoreboardRanked = 3
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "puyo.log"

	// MaxLogSize triggers rotation of the previous log file
	MaxLogSize = 10 * 1024 * 1024
)

// Terminal Layout
const (
	// HUDWidth is the width reserved at the right edge for score and key help
	HUDWidth = 35

	// PreviewOffset is the HUD column of the first preview pair
	PreviewOffset = 12
)
