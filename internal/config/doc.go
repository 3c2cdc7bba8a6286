// Package config handles loading and validation of extract-sct configuration.
//
// Configuration is read from ~/.config/extract-sct/config.toml. The
// EXTRACT_SCT_CONFIG environment variable overrides the file location.
//
// # Key Settings
//
// The [rules] section tunes the line filter:
//
//	[rules]
//	prefix = "sct_"
//	comment_marker = "# "
//	min_tokens = 3
//	exclude = ["sct_download_data", "sct_run_batch"]
//
// A missing config file is not an error; defaults are used. An invalid
// file degrades to defaults with a warning so CI runs are never blocked
// by a bad local config.
package config
