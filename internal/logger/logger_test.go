package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "warn", Format: "json"}, &buf)

	Debug("dropped")
	Info("dropped too")
	if buf.Len() != 0 {
		t.Errorf("Expected debug/info to be filtered at warn level, got %q", buf.String())
	}

	Warn("kept")
	if buf.Len() == 0 {
		t.Error("Expected warn to be logged at warn level")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID, ok := RequestIDFromContext(ctx)
	if !ok || requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s (ok=%v)", requestID, ok)
	}

	log := FromContext(ctx)
	if log == nil {
		t.Error("Expected non-nil logger")
	}

	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("Expected no request id on empty context")
	}
}

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	if a == "" || a == b {
		t.Errorf("Expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	if config.Format != "json" {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}
	if config.Level != "info" {
		t.Errorf("Expected info level in prod, got %s", config.Level)
	}
	if config.Environment != "prod" {
		t.Errorf("Expected prod environment, got %s", config.Environment)
	}
	if config.AddSource {
		t.Error("Expected AddSource=false in production")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.Format != "text" {
		t.Errorf("Expected text format in dev, got %s", config.Format)
	}
	if config.Level != "debug" {
		t.Errorf("Expected debug level in dev, got %s", config.Level)
	}
	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}
}
