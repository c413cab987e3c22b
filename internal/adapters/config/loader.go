// Package config provides the settings loader for originctl.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the settings file looked up in the working directory.
const Filename = "originctl.yaml"

const currentVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a Loader for Filename.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Filename: Filename, log: log}
}

// Load reads the settings from the given working directory. Relative paths
// in the file are resolved against cwd.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return resolve(cwd, domain.DefaultSettings()), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	settings, err := l.parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return resolve(cwd, settings), nil
}

func (l *Loader) parse(data []byte) (*domain.Settings, error) {
	var file Configfile
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, zerr.Wrap(domain.ErrInvalidSettings, "failed to parse settings file: "+err.Error())
		}
	}

	switch file.Version {
	case currentVersion:
	case "":
		l.log.Warn("settings file has no version, assuming "+currentVersion, "file", l.Filename)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unsupported settings version"), "version", file.Version)
	}

	settings := domain.DefaultSettings()
	if file.Origin != "" {
		settings.Origin = file.Origin
	}
	if file.Deployments != "" {
		settings.Deployments = file.Deployments
	}
	if file.Pattern != "" {
		if _, err := filepath.Match(file.Pattern, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "invalid pattern"), "pattern", file.Pattern)
		}
		settings.Pattern = file.Pattern
	}
	settings.JSONLogs = file.Log.JSON

	return settings, nil
}

func resolve(cwd string, s *domain.Settings) *domain.Settings {
	if !filepath.IsAbs(s.Origin) {
		s.Origin = filepath.Join(cwd, s.Origin)
	}
	if !filepath.IsAbs(s.Deployments) {
		s.Deployments = filepath.Join(cwd, s.Deployments)
	}
	return s
}
