// Package logging builds the slog logger of a dev-agents invocation.
//
// Text output goes through [Handler], which colours levels and keys on a
// terminal and masks secret-looking attributes. JSON output uses slog's own
// handler. A log file, when given, always receives JSON.
//
//	level := logging.ResolveLevel(verbosity, quiet, os.LookupEnv)
//	logger := logging.New(logging.Options{Level: level, Format: logging.FormatText})
//	ctx = logging.NewContext(ctx, logger)
//
// -v, -vv and -vvv select info, debug and [LevelTrace]; without flags
// DEV_AGENTS_DEBUG=1 (or true) and DEV_AGENTS_DEBUG=2 do the same for debug
// and trace. Tests use the logtest subpackage.
package logging
