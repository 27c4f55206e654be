package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	BatchFile  string
	Words      []string // bangla=hindi custom words
	Feedback   []string // bangla=hindi corrections
	NoRefine   bool
	ListModels bool
	StateDir   string
	FeedbackDB string

	// Collaborator flags
	Provider string
	Model    string
	Timeout  time.Duration
	CacheDir string
	NoCache  bool

	// Logging flags
	Verbose  int
	JSONLogs bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider: "openai",
		Timeout:  30 * time.Second,
	}
}
