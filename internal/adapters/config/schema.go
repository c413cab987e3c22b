package config

// Configfile represents the structure of the originctl.yaml settings file.
type Configfile struct {
	Version     string `yaml:"version"`
	Origin      string `yaml:"origin"`
	Deployments string `yaml:"deployments"`
	Pattern     string `yaml:"pattern"`
	Log         LogDTO `yaml:"log"`
}

// LogDTO configures log output.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
