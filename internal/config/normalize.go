package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOMDB()
	c.normalizeSearch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.WebsiteDir) == "" {
		c.Paths.WebsiteDir = defaultWebsiteDir
	}
	if c.Paths.WebsiteDir, err = expandPath(c.Paths.WebsiteDir); err != nil {
		return fmt.Errorf("paths.website_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOMDB() {
	if env, ok := os.LookupEnv("OMDB_API_KEY"); ok && strings.TrimSpace(env) != "" {
		c.OMDB.APIKey = strings.TrimSpace(env)
	}
	c.OMDB.APIKey = strings.TrimSpace(c.OMDB.APIKey)
	c.OMDB.BaseURL = strings.TrimSpace(c.OMDB.BaseURL)
	if c.OMDB.BaseURL == "" {
		c.OMDB.BaseURL = defaultOMDBBaseURL
	}
}

func (c *Config) normalizeSearch() {
	if c.Search.FuzzyThreshold == 0 {
		c.Search.FuzzyThreshold = defaultFuzzyThreshold
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
