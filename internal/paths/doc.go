// Package paths resolves the filesystem locations used by dev-agents.
//
// All user-scope locations derive from $HOME (via [os.UserHomeDir]) and the
// XDG config home (via github.com/adrg/xdg):
//
//	| Location            | Default                          |
//	|---------------------|----------------------------------|
//	| global install dir  | ~/.claude/                       |
//	| credentials file    | ~/.dev-agents-env                |
//	| config file         | <XDG_CONFIG_HOME>/dev-agents/    |
//
// Project-scope locations are relative to the working directory and are
// modelled by the install.Target type rather than by this package.
package paths
