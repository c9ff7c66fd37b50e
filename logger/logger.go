package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var log zerolog.Logger

func configure() {
	timeFormat := "15:04:05.000"
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
	}).With().Timestamp().Logger()
}

// Get returns the process-wide logger, configuring it on first use.
func Get() *zerolog.Logger {
	once.Do(configure)
	return &log
}

// GetLeveled returns the logger after setting the global level. Only the
// first call's level takes effect.
func GetLeveled(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configure()
		zerolog.SetGlobalLevel(level)
	})
	return &log
}
