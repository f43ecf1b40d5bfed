// Package config resolves the effective tool configuration by layering
// command-line flags over environment variables over the optional JSON
// config file over built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
)

const (
	// DefaultHost is the image archive origin.
	DefaultHost = "https://www.bing.com"

	archivePath = "/HPImageArchive.aspx"

	defaultNumber = 8
	defaultSize   = "UHD"
	defaultExt    = "jpg"
)

// Config is the fully resolved configuration for one invocation.
type Config struct {
	Project Project

	// Host is the archive origin; overridable mainly for tests.
	Host string

	// Metadata query parameters.
	Number int
	Index  int // -1 when unset, omitted from the query
	Market string

	// Image variant tokens.
	Size string
	Ext  string
}

// Options carries values passed on the command line. Nil fields were not
// given and defer to the environment, config file or defaults.
type Options struct {
	ConfigPath string
	DataDir    string
	StateFile  string

	Number *int
	Index  *int
	Market *string
	Size   *string
	Ext    *string
}

// fileConfig is the on-disk config.json schema. All fields are optional.
type fileConfig struct {
	Number *int    `json:"number"`
	Index  *int    `json:"index"`
	Market *string `json:"market"`
	Size   *string `json:"size"`
	Ext    *string `json:"ext"`
}

// Load resolves project directories and merges the configuration layers.
func Load(opts Options) (*Config, error) {
	project, err := ResolveProject()
	if err != nil {
		return nil, err
	}
	return LoadWithProject(opts, project)
}

// LoadWithProject is Load with the directory resolution already done,
// allowing tests and flags to substitute their own paths.
func LoadWithProject(opts Options, project Project) (*Config, error) {
	if opts.DataDir != "" {
		project.DataDir = opts.DataDir
	}
	if opts.StateFile != "" {
		project.StateFilePath = opts.StateFile
	}

	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = project.ConfigFilePath
	}

	var file fileConfig
	contents, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(contents, &file); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := &Config{
		Project: project,
		Host:    DefaultHost,
		Number:  defaultNumber,
		Index:   -1,
		Size:    defaultSize,
		Ext:     defaultExt,
	}

	if file.Number != nil {
		cfg.Number = *file.Number
	}
	if file.Index != nil {
		cfg.Index = *file.Index
	}
	if file.Market != nil {
		cfg.Market = *file.Market
	}
	if file.Size != nil {
		cfg.Size = *file.Size
	}
	if file.Ext != nil {
		cfg.Ext = *file.Ext
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyOptions(opts)

	if cfg.Number < 1 {
		return nil, fmt.Errorf("image count must be at least 1, got %d", cfg.Number)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BINGWALL_NUMBER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse BINGWALL_NUMBER: %w", err)
		}
		c.Number = n
	}
	if v := os.Getenv("BINGWALL_INDEX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse BINGWALL_INDEX: %w", err)
		}
		c.Index = n
	}
	if v := os.Getenv("BINGWALL_MARKET"); v != "" {
		c.Market = v
	}
	if v := os.Getenv("BINGWALL_SIZE"); v != "" {
		c.Size = v
	}
	if v := os.Getenv("BINGWALL_EXT"); v != "" {
		c.Ext = v
	}
	return nil
}

func (c *Config) applyOptions(opts Options) {
	if opts.Number != nil {
		c.Number = *opts.Number
	}
	if opts.Index != nil {
		c.Index = *opts.Index
	}
	if opts.Market != nil {
		c.Market = *opts.Market
	}
	if opts.Size != nil {
		c.Size = *opts.Size
	}
	if opts.Ext != nil {
		c.Ext = *opts.Ext
	}
}

// MetadataURL builds the archive metadata endpoint URL for this config.
func (c *Config) MetadataURL() string {
	q := url.Values{}
	q.Set("format", "js")
	q.Set("n", strconv.Itoa(c.Number))
	if c.Index >= 0 {
		q.Set("idx", strconv.Itoa(c.Index))
	}
	if c.Market != "" {
		q.Set("mkt", c.Market)
	}
	return c.Host + archivePath + "?" + q.Encode()
}
