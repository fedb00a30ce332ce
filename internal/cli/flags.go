package cli

// Flags holds all command-line flag values for the client CLI.
type Flags struct {
	CfgFile        string
	Mode           string
	TargetLanguage string
	SourceLanguage string
	WebProvider    string

	// translate flags
	Sentence string

	// speak flags
	Language string

	// save flags
	Source    string
	SourceURL string
	Tags      []string
}

// NewFlags creates a new Flags instance. Defaults come from the
// persisted configuration; flags only override when set.
func NewFlags() *Flags {
	return &Flags{}
}
