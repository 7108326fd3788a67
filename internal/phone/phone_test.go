package phone

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"local format", "0712345678", true},
		{"international format", "254712345678", true},
		{"plus prefix", "+254712345678", true},
		{"bare nine digits", "712345678", true},
		{"spaces and dashes", "0712-345 678", true},
		{"airtel prefix", "0733123456", true},
		{"73 band", "0730000000", true},
		{"too short", "07123", false},
		{"too long", "07123456789", false},
		{"landline", "0204123456", false},
		{"not starting with seven", "0812345678", false},
		{"empty", "", false},
		{"letters", "07one2345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"local format", "0712345678", "254712345678", true},
		{"already international", "254712345678", "254712345678", true},
		{"plus prefix", "+254712345678", "254712345678", true},
		{"bare nine digits", "712345678", "254712345678", true},
		{"formatted input", "0712 345-678", "254712345678", true},
		{"garbage", "12345", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local format", "0712345678", "254 712 345 678"},
		{"international format", "254712345678", "254 712 345 678"},
		{"unnormalizable input returned unchanged", "not-a-number", "not-a-number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
