package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/lib/console"
	"gopkg.in/yaml.v3"
)

type OutputConfig struct {
	// Indentation used when printing payloads. Empty means compact JSON.
	Indent string `yaml:"indent" env:"INDENT, overwrite"`
	// Whether or not to validate payloads against their JSON Schema before printing.
	Validate bool `yaml:"validate" env:"VALIDATE, overwrite"`
}

type Config struct {
	// Whether or not to print verbose output.
	Verbose bool         `yaml:"verbose" env:"VERBOSE, overwrite"`
	Output  OutputConfig `yaml:"output" env:",prefix=OUTPUT_"`
}

// Singleton CLI config instance.
var I Config

// Returns the default config, written to disk the first time the CLI runs.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Indent: constants.DefaultIndent,
		},
	}
}

// Returns path to the global config file.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}

	return filepath.Join(homeDir, constants.ConfigDirName, constants.ConfigFileName)
}

// Initialize the CLI config from the global config file, a `.env` file in the
// current directory and the environment.
func InitConfig() Config {
	// Variables from `.env` never override ones already set in the environment
	if err := godotenv.Load(constants.EnvFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal(err)
	}

	cfg, err := Load(context.Background(), GetConfigPath(), envconfig.OsLookuper())
	if err != nil {
		log.Fatal(err)
	}

	I = cfg
	console.SetVerbose(I.Verbose)

	if I.Verbose {
		// Print config as JSON
		cfgJson, err := json.MarshalIndent(I, "", "  ")
		if err != nil {
			log.Fatal(err)
		}

		console.Verbose("Config:")
		console.Verbose(string(cfgJson))
	}

	return I
}

// Load config from the YAML file at `cpath`, creating it with defaults if it
// doesn't exist yet, then apply overrides from `lookuper`.
func Load(ctx context.Context, cpath string, lookuper envconfig.Lookuper) (Config, error) {
	cfg, err := readOrCreate(cpath)
	if err != nil {
		return Config{}, err
	}

	err = envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(constants.EnvPrefix, lookuper),
	})
	if err != nil {
		return Config{}, fmt.Errorf("apply environment: %w", err)
	}

	return cfg, nil
}

func readOrCreate(cpath string) (Config, error) {
	// Create default config file if it doesn't exist yet
	if _, err := os.Stat(cpath); errors.Is(err, os.ErrNotExist) {
		// Create directories if they don't exist
		if err := os.MkdirAll(filepath.Dir(cpath), 0755); err != nil {
			return Config{}, err
		}

		cfg := Default()
		cYaml, err := yaml.Marshal(cfg)
		if err != nil {
			return Config{}, err
		}

		if err := os.WriteFile(cpath, cYaml, 0644); err != nil {
			return Config{}, err
		}

		return cfg, nil
	}

	// Open file
	cBytes, err := os.ReadFile(cpath)
	if err != nil {
		return Config{}, err
	}

	// Decode file contents
	var cfg Config
	if err := yaml.Unmarshal(cBytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", cpath, err)
	}

	return cfg, nil
}
