package main

import (
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// configFilename is discovered next to the source document first, then in
// the working directory.
const configFilename = ".tart.yaml"

// Config mirrors the optional .tart.yaml file.
type Config struct {
	MaxCallDepth int  `yaml:"max-call-depth"`
	Verbose      bool `yaml:"verbose"`
}

func loadConfig(sourcePath string) (*Config, error) {
	cfg := &Config{}
	for _, dir := range []string{filepath.Dir(sourcePath), "."} {
		path := filepath.Join(dir, configFilename)
		buf, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Annotatef(err, "cannot read %s", path)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, errors.Annotatef(err, "cannot parse %s", path)
		}
		return cfg, nil
	}
	return cfg, nil
}
