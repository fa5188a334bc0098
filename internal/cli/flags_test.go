package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"ProviderKind", flags.ProviderKind, "openai"},
		{"Model", flags.Model, "gpt-5.2"},
		{"Timeout", flags.Timeout, 30 * time.Second},
		{"MaxRetries", flags.MaxRetries, 2},
		{"HistoryLimit", flags.HistoryLimit, 10},
		{"HistoryEnabled", flags.HistoryEnabled, true},
		{"LogLevel", flags.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"LangPair", flags.LangPair},
		{"BaseURL", flags.BaseURL},
		{"CachePath", flags.CachePath},
		{"LogFile", flags.LogFile},
		{"MetricsListen", flags.MetricsListen},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if flags.ListModels {
		t.Error("ListModels = true, want false")
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "BatchFile", "ListModels", "LangPair",
		"ProviderKind", "Model", "BaseURL", "Timeout", "MaxRetries",
		"CachePath", "HistoryLimit", "HistoryEnabled",
		"LogLevel", "LogFile", "MetricsListen",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
