// Package logger configures the global zerolog logger.
package logger

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Init sets up the global logger with console output and a level derived
// from the environment. Call it first in every main().
//
// ENVIRONMENT=dev or test enables trace logging; anything else logs at
// info and above. LOG_LEVEL overrides both when set to a valid zerolog
// level name (trace, debug, info, warn, error).
func Init() {
	// a .env file is optional
	_ = godotenv.Load()

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	var logLevel zerolog.Level
	switch environment {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	if override := strings.ToLower(os.Getenv("LOG_LEVEL")); override != "" {
		if parsed, err := zerolog.ParseLevel(override); err == nil {
			logLevel = parsed
		} else {
			log.Warn().Str("log_level", override).Msg("unknown LOG_LEVEL, keeping environment default")
		}
	}

	zerolog.SetGlobalLevel(logLevel)
	log.Debug().Str("environment", environment).Str("level", logLevel.String()).Msg("logger initialized")
}
