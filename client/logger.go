package client

import "github.com/rs/zerolog"

// restyLogger routes resty's internal warnings into zerolog.
type restyLogger struct{ log zerolog.Logger }

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
