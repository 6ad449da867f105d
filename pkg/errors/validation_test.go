package errors

import (
	"strings"
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Newtonsoft.Json", false},
		{"with spaces", "My Package", false},
		{"empty", "", true},
		{"control char", "bad\x01name", true},
		{"newline", "bad\nname", true},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPackage) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidatePackageID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"Newtonsoft.Json", false},
		{"Microsoft.Extensions.Logging.Abstractions", false},
		{"System_Memory", false},
		{"xunit.runner.visualstudio", false},
		{"PackageA", false},
		{"", true},
		{"My Package", true},
		{"bad..dots", true},
		{".leading", true},
		{"trailing-", true},
		{strings.Repeat("a", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidatePackageID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "out/graph.png", false},
		{"absolute", "/tmp/graph.png", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "graph\x00.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
