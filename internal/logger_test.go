package internal

import "testing"

func TestSetVerbose(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("SetVerbose(false) logLevel = %v, want LogLevelInfo", logLevel)
	}
}

func TestLogLevelOrdering(t *testing.T) {
	if !(LogLevelError < LogLevelWarn && LogLevelWarn < LogLevelInfo && LogLevelInfo < LogLevelDebug) {
		t.Error("log levels are not ordered from error to debug")
	}
}

func TestLogFunctions(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetLogLevel(LogLevelDebug)
	LogError("test error %s", "message")
	LogWarn("test warning message")
	LogInfo("test info message")
	LogDebug("test debug message")
}
