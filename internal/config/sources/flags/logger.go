package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/log"

	"ddnsc/internal/config/settings"
)

func (s *Source) readLogger() (settings settings.Logger, err error) {
	settings.Caller = s.bool("log-caller")

	levelString := s.string("log-level")
	if levelString != nil {
		settings.Level = new(log.Level)
		*settings.Level, err = parseLogLevel(*levelString)
		if err != nil {
			return settings, fmt.Errorf("flag --log-level: %w", err)
		}
	}

	return settings, nil
}

var ErrLogLevelUnknown = errors.New("log level is unknown")

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}
