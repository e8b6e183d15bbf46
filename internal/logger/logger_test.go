package logger

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWithComponent(t *testing.T) {
	entry := WithComponent("test-component")
	if entry == nil {
		t.Fatal("expected non-nil entry")
	}

	if val, ok := entry.Data["component"]; !ok {
		t.Error("expected component field to be set")
	} else if val != "test-component" {
		t.Errorf("expected component 'test-component', got '%v'", val)
	}
}

func TestWithView(t *testing.T) {
	entry := WithView("paging", "users")
	if entry.Data["component"] != "paging" {
		t.Errorf("expected component 'paging', got '%v'", entry.Data["component"])
	}
	if entry.Data["view"] != "users" {
		t.Errorf("expected view 'users', got '%v'", entry.Data["view"])
	}
}

func TestLoggerInit(t *testing.T) {
	if Logger == nil {
		t.Fatal("expected Logger to be initialized")
	}

	if Logger.Out != os.Stdout {
		t.Error("expected Logger output to be os.Stdout")
	}
}

func TestSetLevel(t *testing.T) {
	origLevel := Logger.GetLevel()
	defer Logger.SetLevel(origLevel)

	tests := []struct {
		name          string
		value         string
		expectedLevel logrus.Level
		wantErr       bool
	}{
		{"debug level", "debug", logrus.DebugLevel, false},
		{"warn level", "warn", logrus.WarnLevel, false},
		{"DEBUG uppercase", "DEBUG", logrus.DebugLevel, false},
		{"padded", "  error ", logrus.ErrorLevel, false},
		{"invalid level", "invalid", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := SetLevel(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if level != tt.expectedLevel || Logger.GetLevel() != tt.expectedLevel {
				t.Errorf("expected level %v, got %v", tt.expectedLevel, Logger.GetLevel())
			}
		})
	}
}

func TestSetFormat(t *testing.T) {
	defer SetFormat("text")

	SetFormat("json")
	if _, ok := Logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected JSON formatter, got %T", Logger.Formatter)
	}

	SetFormat("text")
	if _, ok := Logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("expected text formatter, got %T", Logger.Formatter)
	}
}
