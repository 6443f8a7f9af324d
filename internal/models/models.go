// Package models defines the payload shapes served by the BeetleRank dev API.
// Nothing here is stored anywhere: every value is a canned literal (or loaded
// from a fixture file) and re-emitted verbatim on each request. The struct tags
// pin the JSON field names the frontend and the racing-timer client expect, and
// the yaml tags let the same structs be read from a fixture file.
package models

// --- Enums ---
// Go doesn't have a built-in enum keyword, so we use a named string type plus
// constants, the same way the rest of the codebase models closed sets of values.

// StepName labels a checkpoint row in a course file.
type StepName string

const (
	StepNameStart      StepName = "start" // First gate of the course; the timer starts here
	StepNameReset      StepName = "reset" // Sentinel row (negative step) that resets the run
	StepNameEnd        StepName = "end"   // Final gate; the timer stops here
	StepNameCheckpoint StepName = "*"     // Wildcard marker: an ordinary intermediate checkpoint
)

// Valid reports whether s is one of the known step names.
func (s StepName) Valid() bool {
	switch s {
	case StepNameStart, StepNameReset, StepNameEnd, StepNameCheckpoint:
		return true
	default:
		return false
	}
}

// --- Payloads ---

// RankingEntry is one line of a leaderboard.
// Time and RealTime are strings on the wire ("01:00,000" and "60.0"), so they
// are kept as strings here rather than parsed into durations.
type RankingEntry struct {
	Pos      int    `json:"pos" yaml:"pos"`           // 1-based leaderboard position
	Time     string `json:"time" yaml:"time"`         // Elapsed time formatted "MM:SS,mmm"
	Name     string `json:"name" yaml:"name"`         // Display name of the racer
	RealTime string `json:"realtime" yaml:"realtime"` // Elapsed seconds, as a decimal string
	Date     string `json:"date" yaml:"date"`         // When the run was uploaded ("2006-01-02 15:04:05")
	Map      string `json:"map" yaml:"map"`           // Map the run was recorded on
	File     string `json:"file" yaml:"file"`         // Name of the uploaded race log
}

// RankingResponse is the body of GET /top3/:guildhall/:user.
// Ranking holds the top performers; You holds the window of entries around the
// requesting user.
type RankingResponse struct {
	Ranking []RankingEntry `json:"ranking" yaml:"ranking"`
	You     []RankingEntry `json:"you" yaml:"you"`
}

// Checkpoint is one row of the checkpoints CSV (STEP,STEPNAME,X,Y,Z).
type Checkpoint struct {
	Step int      `yaml:"step"` // Ordinal of the gate; negative values mark a reset row
	Name StepName `yaml:"name"`
	X    float64  `yaml:"x"`
	Y    float64  `yaml:"y"`
	Z    float64  `yaml:"z"`
}

// Point returns the checkpoint position as an (x, y, z) triple.
func (c Checkpoint) Point() [3]float64 {
	return [3]float64{c.X, c.Y, c.Z}
}

// Cup is a named competition that groups maps.
// A cup with no maps is still listed by GET /cups but has no map listing.
type Cup struct {
	Name string   `yaml:"name"`
	Maps []string `yaml:"maps"`
}

// StatusResponse is the {"succeed": bool} envelope used by the status routes.
type StatusResponse struct {
	Succeed bool `json:"succeed"`
}

// CupsResponse is the body of GET /cups.
type CupsResponse struct {
	Cups []string `json:"cups"`
}

// MapsResponse is the body of GET /maps/:cup.
type MapsResponse struct {
	Maps []string `json:"maps"`
}

// ErrorResponse is written for every 4xx/5xx. It keeps the "succeed" field so
// clients that only look at that flag still see a failure.
type ErrorResponse struct {
	Succeed bool   `json:"succeed"`
	Error   string `json:"error"`
}
