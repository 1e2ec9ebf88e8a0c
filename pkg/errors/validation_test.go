package errors

import (
	"strings"
	"testing"
)

func TestValidateChartID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "revenue", false},
		{"valid with dash", "sales-by-region", false},
		{"valid with underscore", "sales_by_region", false},
		{"valid with dot", "q1.totals", false},
		{"valid digits", "2024", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"leading dash", "-chart", true},
		{"space", "my chart", true},
		{"slash", "a/b", true},
		{"markup", "<b>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChartID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidChart) {
				t.Errorf("ValidateChartID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateChartType(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"markdown", false},
		{"widget_dropdown", false},
		{"datasize_indicator", false},
		{"", true},
		{"bar chart", true},
		{"graph\n", true},
	}

	for _, tt := range tests {
		err := ValidateChartType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateChartType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"plain", "Sales Overview", false},
		{"markup is escaped later", "<b>Q1</b> & Q2", false},
		{"unicode", "Übersicht 📊", false},

		{"too long", strings.Repeat("x", 257), true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayoutIndex(t *testing.T) {
	for n := 0; n <= MaxLayoutIndex; n++ {
		if err := ValidateLayoutIndex(n); err != nil {
			t.Errorf("ValidateLayoutIndex(%d) error = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, 13, 100} {
		err := ValidateLayoutIndex(n)
		if !Is(err, ErrCodeInvalidLayout) {
			t.Errorf("ValidateLayoutIndex(%d) error = %v, want %s", n, err, ErrCodeInvalidLayout)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/logo.png", false},
		{"http", "http://example.com/logo.png", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "themes/dark.toml", false},
		{"valid filename only", "logo.png", false},
		{"valid with dots", "v1.2.3/theme.toml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidConfig,
		ErrCodeInvalidChart,
		ErrCodeInvalidLayout,
		ErrCodeInvalidTheme,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeDuplicateChart,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeUnboundSlot,
		ErrCodeRender,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
