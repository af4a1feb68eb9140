package filecleaner

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalVerboseLevel int
	debugFlags         map[string]bool
	logger             = zap.NewNop().Sugar()
)

// SetVerboseLevel sets the global verbose level (0=quiet, 1=basic,
// 2=detailed, 3=trace) and rebuilds the underlying logger to match. Level 0
// swaps in a nop logger so diagnostics cost nothing on the default path.
func SetVerboseLevel(level int) {
	globalVerboseLevel = level
	if level <= 0 {
		logger = zap.NewNop().Sugar()
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if level >= 2 {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	built, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = built.Sugar()
}

// GetVerboseLevel returns the current verbose level.
func GetVerboseLevel() int {
	return globalVerboseLevel
}

// VerboseLog logs a diagnostic message when the global verbose level is at
// or above level. Diagnostics go to stderr and never touch the stdout
// status line contract.
func VerboseLog(level int, format string, args ...interface{}) {
	if globalVerboseLevel < level {
		return
	}
	if level >= 2 {
		logger.Debugf(format, args...)
	} else {
		logger.Infof(format, args...)
	}
}

// SetDebugFlags sets the debug flags from a comma-separated string.
// Supports both simple flags ("scan,compare") and key:value format
// ("scan:true,compare:off").
func SetDebugFlags(flagsStr string) {
	debugFlags = make(map[string]bool)
	if flagsStr == "" {
		return
	}

	for _, flag := range strings.Split(flagsStr, ",") {
		flag = strings.TrimSpace(flag)
		if flag == "" {
			continue
		}

		parts := strings.SplitN(flag, ":", 2)
		flagName := strings.ToLower(parts[0])
		flagValue := true

		if len(parts) > 1 {
			switch strings.ToLower(parts[1]) {
			case "true", "1", "yes", "on":
				flagValue = true
			case "false", "0", "no", "off":
				flagValue = false
			default:
				flagValue = true
			}
		}

		debugFlags[flagName] = flagValue
	}
}

// IsDebugEnabled returns true if the specified debug flag is enabled.
func IsDebugEnabled(flag string) bool {
	if debugFlags == nil {
		return false
	}
	return debugFlags[strings.ToLower(flag)]
}
