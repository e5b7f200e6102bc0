package config

const (
	defaultConfigPath     = "~/.config/cinelog/config.toml"
	defaultDataDir        = "~/.local/share/cinelog"
	defaultWebsiteDir     = "~/.local/share/cinelog/website"
	defaultOMDBBaseURL    = "https://www.omdbapi.com/"
	defaultFuzzyThreshold = 80
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			WebsiteDir: defaultWebsiteDir,
		},
		OMDB: OMDB{
			BaseURL: defaultOMDBBaseURL,
		},
		Search: Search{
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
