package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var once sync.Once
var root zerolog.Logger

func configure() {
	zerolog.TimeFieldFormat = time.RFC3339

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05.000",
	}

	root = zerolog.New(output).With().Timestamp().Logger()
}

// GetLoggerConfigured returns the shared logger after pinning the global
// level. The first caller wins; later calls get the already-configured logger.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configure()
		zerolog.SetGlobalLevel(level)
	})
	return &root
}

func GetLogger() *zerolog.Logger {
	once.Do(configure)
	return &root
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return GetLogger().With().Str("component", name).Logger()
}
