package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Names the processes log under.
const (
	ServiceAPI = "hotel-api"
	ServiceWeb = "hotel-web"
	ServiceCLI = "hotel-cli"
)

// Logger builds the zap logger for one hotel process. LOG_FORMAT=console
// gives the colored development encoder; anything else logs JSON lines to
// stdout. An unknown LOG_LEVEL is rejected.
func (c *Config) Logger(service string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Log.Level != "" {
		parsed, err := zapcore.ParseLevel(c.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		level = parsed
	}

	zc := zap.NewProductionConfig()
	if c.Log.Format == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.OutputPaths = []string{"stdout"}
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	fields := []zap.Field{zap.String("service", service)}
	if c.HotelName != "" {
		fields = append(fields, zap.String("hotel", c.HotelName))
	}
	if host, err := os.Hostname(); err == nil {
		fields = append(fields, zap.String("host", host))
	}
	return zc.Build(zap.Fields(fields...))
}
