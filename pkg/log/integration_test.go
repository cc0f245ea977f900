package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	cockroacherrors "github.com/cockroachdb/errors"
)

// TestLoggerInterface tests the Logger interface implementation
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	// Test Debug logging
	testLogger.Debug("debug message", "key1", "value1", "number", 42)

	// Test Info logging
	testLogger.Info("info message", "operation", "test")

	// Test Warn logging
	testLogger.Warn("warning message", "warning_code", "TEST_WARNING")

	// Test Error logging
	testErr := fmt.Errorf("test error")
	testLogger.Error("error message", testErr, "error_code", "TEST_ERROR")

	// Verify output was captured
	output := buffer.String()
	if output == "" {
		t.Fatal("Expected log output, got empty string")
	}

	// Verify all log levels were captured
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("Message %q not found in output", msg)
		}
	}

	// Verify structured fields
	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}

	if !testLogger.ContainsField("number", 42.0) { // JSON unmarshaling converts numbers to float64
		t.Error("Expected field number=42 not found")
	}
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	// Create contextual logger
	contextLogger := testLogger.With(
		GeneratorNameKey, "LinearRegressionData",
		ComponentKey, "simulate",
		DatasetIDKey, "sim-001",
	)

	// Log with context
	contextLogger.Info("contextual message", OperationKey, OperationLoad)

	// Verify context fields are included
	if !testLogger.ContainsField(GeneratorNameKey, "LinearRegressionData") {
		t.Error("Generator name context not found")
	}

	if !testLogger.ContainsField(ComponentKey, "simulate") {
		t.Error("Component context not found")
	}

	if !testLogger.ContainsField(OperationKey, OperationLoad) {
		t.Error("Operation field not found")
	}
}

// TestLoggerEnabled tests the Enabled method
func TestLoggerEnabled(t *testing.T) {
	// Create logger with Info level
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	// Test level checking
	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}

	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error level")
	}

	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	// Test that disabled logs don't appear
	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}

	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

// TestGenerationAttributeKeys tests generation-specific attribute keys
func TestGenerationAttributeKeys(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	// Simulate generation logging
	testLogger.Info("Generation started",
		OperationKey, OperationLoad,
		SamplesKey, 1000,
		FeaturesKey, 10,
		GeneratorNameKey, "LinearRegressionData",
		SNRTargetKey, 3.0,
		DurationMsKey, 250,
	)

	// Verify generation attributes
	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]

	// Check generation-specific fields
	expectedFields := map[string]interface{}{
		OperationKey:     OperationLoad,
		SamplesKey:       1000.0, // JSON numbers are float64
		FeaturesKey:      10.0,
		GeneratorNameKey: "LinearRegressionData",
		SNRTargetKey:     3.0,
		DurationMsKey:    250.0,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := entry[key]; !exists {
			t.Errorf("Expected field %s not found", key)
		} else if actualValue != expectedValue {
			t.Errorf("Field %s: expected %v, got %v", key, expectedValue, actualValue)
		}
	}
}

// TestLoggerProviderIntegration tests the LoggerProvider interface
func TestLoggerProviderIntegration(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)

	// Test GetLogger
	logger := provider.GetLogger()
	logger.Info("provider test message")

	// Test GetLoggerWithName
	namedLogger := provider.GetLoggerWithName("optimize")
	namedLogger.Info("named logger message")

	// Verify output
	lines := buffer.String()
	if lines == "" {
		t.Fatal("Expected log output from provider")
	}

	if !strings.Contains(lines, "provider test message") {
		t.Error("Provider test message not found")
	}

	if !strings.Contains(lines, "named logger message") {
		t.Error("Named logger message not found")
	}

	if !strings.Contains(lines, "optimize") {
		t.Error("Component name not found in named logger output")
	}
}

// TestErrorLoggingIntegration tests error logging integration
func TestErrorLoggingIntegration(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelError)

	// Create a test error
	testErr := fmt.Errorf("no sign change in bracket")

	// Log error with context
	testLogger.Error("SNR calibration failed",
		"error", testErr,
		OperationKey, OperationBisect,
		ErrorCodeKey, ErrorNoSignChange,
		SNRTargetKey, 5.0,
		SuggestionKey, "Use a non-zero penalty weight",
	)

	// Verify error logging
	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 error entry, got %d", len(entries))
	}

	entry := entries[0]

	// Check error-specific fields
	if entry["level"] != "ERROR" {
		t.Error("Expected ERROR level")
	}

	if !testLogger.ContainsField(ErrorCodeKey, ErrorNoSignChange) {
		t.Error("Error code not found")
	}

	if !testLogger.ContainsField(SuggestionKey, "Use a non-zero penalty weight") {
		t.Error("Error suggestion not found")
	}
}

// TestErrFmtHandler_Stacktrace tests that the handler extracts stacktraces
// from cockroachdb errors passed via ErrAttr.
func TestErrFmtHandler_Stacktrace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(WrapByErrFmtHandler(base))

	err := cockroacherrors.New("bracket expansion failed")
	logger.Error("SNR calibration failed", ErrAttr(err))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("Failed to parse log output: %v", jsonErr)
	}

	stack, ok := entry[StacktraceAttrKey].(string)
	if !ok || stack == "" {
		t.Error("Expected non-empty stacktrace attribute")
	}

	if !strings.Contains(stack, "integration_test.go") {
		t.Errorf("Stacktrace should reference the call site, got: %s", stack)
	}
}

// TestErrFmtHandler_PlainError tests that errors without stacktraces pass through.
func TestErrFmtHandler_PlainError(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(WrapByErrFmtHandler(base))

	logger.Error("plain failure", ErrAttr(fmt.Errorf("plain error")))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("Failed to parse log output: %v", jsonErr)
	}

	if _, exists := entry[StacktraceAttrKey]; exists {
		t.Error("Plain errors should not produce a stacktrace attribute")
	}

	if entry[ErrAttrKey] != "plain error" {
		t.Errorf("Expected error attribute 'plain error', got %v", entry[ErrAttrKey])
	}
}

// TestToLogLevel tests the string-to-level conversion
func TestToLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := ToLogLevel(tt.level); got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}

	t.Run("invalid level panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for invalid log level")
			}
		}()
		ToLogLevel("verbose")
	})
}

// BenchmarkLogging benchmarks logging performance
func BenchmarkLogging(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationLoad,
			SamplesKey, 1000,
		)
	}
}

// BenchmarkLoggingWithContext benchmarks logging with contextual fields
func BenchmarkLoggingWithContext(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	contextLogger := testLogger.With(
		GeneratorNameKey, "LinearRegressionData",
		ComponentKey, "benchmark",
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		contextLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationLoad,
			SamplesKey, 1000,
		)
	}
}
