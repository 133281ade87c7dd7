package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ghodss/yaml"
)

const (
	DefaultConfigFile = "./calc.yml"
)

var defaultExpressions = []string{
	"1+1",
	"(1+2)^2",
	"5+3!",
	"7+7*2",
	"(3+3)/3",
	"4!",
}

type Config struct {
	Expressions []string `json:"expressions"`
	Database    string   `json:"database"`
	Record      bool     `json:"record"`
}

// LoadConfig reads the YAML file at path. A missing file is not an error and
// gives the default sample expressions.
func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.Expressions = defaultExpressions
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	err = yaml.Unmarshal(raw, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(cfg.Expressions) == 0 {
		cfg.Expressions = defaultExpressions
	}
	return cfg, nil
}
