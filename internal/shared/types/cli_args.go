package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Period     string
	Plazas     []string
	ReportName string
	ReportType []string
	Dir        string
}
