package feast

import "go.uber.org/zap"

// ParseOpt bundles options for Parse.
type ParseOpt struct {
	// Name labels log entries for this parse.
	Name string
	// RequireEOF reports leftover input as a trailing_input issue.
	RequireEOF bool
	// Logger receives debug entries; nil disables logging.
	Logger *zap.Logger
}

func (o ParseOpt) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func normalizeOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Name == "" {
		opt.Name = "parse"
	}
	return opt
}
