// Package output renders command results for terminals, scripts and agents.
package output

// OutputMode selects how results are rendered.
type OutputMode string

// Mode is shorthand for OutputMode, convenient for conversions from config
// strings: output.Mode(cfg.OutputFormat).
type Mode = OutputMode

// Output modes.
const (
	ModeAuto     OutputMode = "auto"     // text on a TTY, markdown otherwise
	ModeText     OutputMode = "text"     // styled table
	ModeMarkdown OutputMode = "markdown" // markdown table
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
	ModePlain    OutputMode = "plain" // the formatted result only
)
