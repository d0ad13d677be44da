// Package logger builds *slog.Logger values from functional options.
//
// New picks slog's text or JSON handler, applies a level and static
// attributes, and optionally wraps the handler so attributes stored in a
// context.Context are added to records logged with the *Context methods.
// Logs go to stderr in text format at info level unless configured otherwise.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSONFormatter(),
//	    logger.WithComponent("invis"),
//	)
//	log.Debug("Registry seeded.", logger.SeedFile("invis.yaml"))
//
// ParseLevel and ParseFormat validate level and format names coming from
// configuration or flags. Helpers in attr.go keep attribute keys consistent:
// Error and Errors return an empty Attr for nil errors, so they can be passed
// without a nil check.
package logger
