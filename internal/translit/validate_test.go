package translit

import "testing"

func TestValidateBanglaText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"valid word", "আমি", false},
		{"valid sentence", "আমি ভাত খাই।", false},
		{"mixed with Latin", "hello আমি", false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"Latin only", "hello", true},
		{"Devanagari only", "मैं", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBanglaText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBanglaText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}
