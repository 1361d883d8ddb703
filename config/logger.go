package config

import (
	"github.com/spf13/viper"
)

// Logger logger config struct
type Logger struct {
	Level      int
	Format     string
	Output     string
	OutputFile string
	// SensitiveFields are masked in log fields, matched case-insensitively as substrings.
	SensitiveFields []string
}

func getLoggerConfig(v *viper.Viper) *Logger {
	fields := v.GetStringSlice("logger.sensitive_fields")
	if len(fields) == 0 {
		fields = []string{"password", "token", "secret", "csrf"}
	}
	return &Logger{
		Level:           getIntOrDefault(v, "logger.level", 4),
		Format:          getStringOrDefault(v, "logger.format", "text"),
		Output:          getStringOrDefault(v, "logger.output", "stdout"),
		OutputFile:      v.GetString("logger.output_file"),
		SensitiveFields: fields,
	}
}
