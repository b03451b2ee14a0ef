package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLogLevelToZap(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
		name  string
	}{
		{level: "Verbose", want: zapcore.DebugLevel, name: "Verbose"},
		{level: "verbose", want: zapcore.DebugLevel, name: "Verbose"},
		{level: "Normal", want: zapcore.InfoLevel, name: "Normal"},
		{level: "WARNING", want: zapcore.WarnLevel, name: "Warning"},
		{level: "Error", want: zapcore.ErrorLevel, name: "Error"},
		{level: "", want: zapcore.InfoLevel, name: "Normal"},
		{level: "Diagnostic", want: zapcore.InfoLevel, name: "Normal"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LogLevelToZap(tt.level))
			assert.Equal(t, tt.name, NormalizeLogLevel(tt.level))
		})
	}
}
