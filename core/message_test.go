package core

import "testing"

func TestClassificationString(t *testing.T) {
	tests := []struct {
		classification Classification
		want           string
	}{
		{Warning, "WARNING"},
		{Error, "ERROR"},
		{FatalError, "FATAL"},
		{Unknown, "UNKNOWN"},
		{Classification(42), "INVALID"},
	}

	for _, tt := range tests {
		if got := tt.classification.String(); got != tt.want {
			t.Errorf("Classification(%d).String() = %q, want %q", tt.classification, got, tt.want)
		}
	}
}

func TestParseClassification(t *testing.T) {
	tests := []struct {
		input string
		want  Classification
	}{
		{"warning", Warning},
		{"WARN", Warning},
		{"error", Error},
		{"ERROR", Error},
		{"fatal", FatalError},
		{"FatalError", FatalError},
		{"unknown", Unknown},
		{"", Unknown},
		{"trace", Unknown},
	}

	for _, tt := range tests {
		if got := ParseClassification(tt.input); got != tt.want {
			t.Errorf("ParseClassification(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMessageAccessors(t *testing.T) {
	m := NewMessage(Error, "disk full")

	if m.Classification() != Error {
		t.Errorf("Classification() = %v, want %v", m.Classification(), Error)
	}
	if m.Text() != "disk full" {
		t.Errorf("Text() = %q, want %q", m.Text(), "disk full")
	}
}
