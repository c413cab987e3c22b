package domain

// Settings holds the tool configuration read from originctl.yaml.
type Settings struct {
	// Origin is the origin file commands operate on when none is given.
	Origin string

	// Deployments is the directory scanned by status.
	Deployments string

	// Pattern is the glob matched against file names in Deployments.
	Pattern string

	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Origin:      "origin.conf",
		Deployments: ".",
		Pattern:     "*.origin",
	}
}
