// Package config provides configuration management for the dev-agents CLI.
//
// Configuration is optional. Every key has a default and can be overridden
// by a YAML file or by environment variables prefixed with DEV_AGENTS_.
//
// # Configuration File
//
// The default location is <XDG config home>/dev-agents/config.yaml
// (~/.config/dev-agents/config.yaml on Linux). A different file can be
// given with the --config flag.
//
//	templates_dir: ~/src/my-templates   # optional, replaces the built-in templates
//	global_dir: ~/.claude               # target of `init --global` and `global`
//	credentials_file: ~/.dev-agents-env # written by `dev-agents mcp`
//
// A leading "~" in any path is expanded to the home directory.
//
// # Loading Configuration
//
// Call [Init] once, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load(flagPath)
//
// Load fails when an explicit path does not exist, when the file cannot be
// parsed, or when [Validate] rejects a value. Those errors are marked with
// errors.ErrInvalidConfig.
package config
