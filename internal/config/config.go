package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"app"`

	Input struct {
		File     string   `yaml:"file"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"input"`

	Rates struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"rates"`

	Charts struct {
		TopCities int `yaml:"top_cities"`
		TopSkills int `yaml:"top_skills"`
	} `yaml:"charts"`
}

func (c Config) RatesTimeout() time.Duration {
	if c.Rates.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.Rates.TimeoutSeconds) * time.Second
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
