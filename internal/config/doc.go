// Package config loads, normalizes, and validates cinelog's TOML
// configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/cinelog/config.toml, then a cinelog.toml in the working
// directory, with repository defaults filling any gaps. Paths are expanded
// (~ and relative segments) during normalization so the rest of the
// application only ever sees absolute locations.
package config
