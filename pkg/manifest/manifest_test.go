// SPDX-License-Identifier: MPL-2.0

package manifest

import "testing"

func TestApplyVersionAndDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		version  string
		date     string
		expected string
	}{
		{
			name:     "both placeholders present",
			input:    `<extension><version/><creationDate/></extension>`,
			version:  "5.4.0.1",
			date:     "2024-01-01",
			expected: `<extension><version>5.4.0.1</version><creationDate>2024-01-01</creationDate></extension>`,
		},
		{
			name:     "version placeholder only",
			input:    `<extension><version/></extension>`,
			version:  "1.0.0",
			date:     "2024-06-15",
			expected: `<extension><version>1.0.0</version></extension>`,
		},
		{
			name:     "no placeholders leaves text untouched",
			input:    `<extension><version>1.0</version></extension>`,
			version:  "2.0",
			date:     "2024-01-01",
			expected: `<extension><version>1.0</version></extension>`,
		},
		{
			name:     "surrounding markup preserved byte for byte",
			input:    "<?xml version=\"1.0\"?>\n<extension>\n\t<version/>\n\t<creationDate/>\n\t<author>Team</author>\n</extension>\n",
			version:  "5.4.0.1",
			date:     "2024-01-01",
			expected: "<?xml version=\"1.0\"?>\n<extension>\n\t<version>5.4.0.1</version>\n\t<creationDate>2024-01-01</creationDate>\n\t<author>Team</author>\n</extension>\n",
		},
		{
			name:     "empty document",
			input:    "",
			version:  "1.0",
			date:     "2024-01-01",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyVersionAndDate(tt.input, tt.version, tt.date)
			if got != tt.expected {
				t.Errorf("ApplyVersionAndDate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestApplyVersionAndDateIdempotent(t *testing.T) {
	input := `<extension><version/><creationDate/></extension>`
	once := ApplyVersionAndDate(input, "5.4.0.1", "2024-01-01")
	twice := ApplyVersionAndDate(once, "5.4.0.1", "2024-01-01")
	if once != twice {
		t.Errorf("second pass altered the document: %q vs %q", once, twice)
	}
}

func TestLocaliseClass(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"ms-MY", "Ms_MYLocalise"},
		{"de", "DeLocalise"},
		{"de-DE", "De_DELocalise"},
		{"pt-BR", "Pt_BRLocalise"},
		{"en-GB", "En_GBLocalise"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := LocaliseClass(tt.code); got != tt.expected {
				t.Errorf("LocaliseClass(%q) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestApplyIdentifier(t *testing.T) {
	input := "<?php\nclass En_GBLocalise\n{\n}\n"
	expected := "<?php\nclass Ms_MYLocalise\n{\n}\n"
	if got := ApplyIdentifier(input, "ms-MY"); got != expected {
		t.Errorf("ApplyIdentifier() = %q, want %q", got, expected)
	}

	noToken := "<?php\nclass SomethingElse\n{\n}\n"
	if got := ApplyIdentifier(noToken, "ms-MY"); got != noToken {
		t.Errorf("text without token was altered: %q", got)
	}
}

func TestLocaliseFileName(t *testing.T) {
	if got := LocaliseFileName("ms-MY"); got != "ms-MY.localise.php" {
		t.Errorf("LocaliseFileName() = %q", got)
	}
}
