package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// profile holds console defaults loaded from a YAML file, letting a caller
// avoid repeating --transport/--device/--baud on every invocation.
type profile struct {
	Transport string `yaml:"transport"`
	Device    string `yaml:"device"`
	Baud      int    `yaml:"baud"`
}

// loadProfile reads path (or, if empty, ~/.mboot.yaml) and returns its
// decoded contents. A missing file is not an error; it yields a zero-value
// profile so flag defaults stand unchanged.
func loadProfile(path string) (profile, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return profile{}, nil
		}
		path = filepath.Join(home, ".mboot.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return profile{}, nil
	}
	if err != nil {
		return profile{}, err
	}

	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return profile{}, err
	}
	return p, nil
}
