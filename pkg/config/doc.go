// Package config loads the migration configuration for llmigrate.
//
//	+----------------+
//	|  config.yml    |   first found wins
//	|  config.yaml   |
//	+-------+--------+
//	        |
//	+-------+--------+
//	|  YAML decoder  |   unknown keys rejected
//	+-------+--------+
//	        |
//	+-------+--------+
//	|   Validate     |   prompt required, glob defaults to **/*
//	+----------------+
//
// 🎯 Purpose:
// - Locates the config file in the working directory
// - Parses and validates it once per run
// - Decides which file contents are eligible for migration (Matches)
//
// 🔍 Example:
//
//	cfg, err := config.Load(ctx, ".")
//	if errors.Is(err, config.ErrConfigNotFound) {
//		// ask the user to create config.yml
//	}
//	if cfg.Matches(content) {
//		// send the file to the model
//	}
package config
