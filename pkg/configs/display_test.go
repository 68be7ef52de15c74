package configs

import "testing"

func Test_ParseOutputFormat(t *testing.T) {
	cases := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"table", FormatTable, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"xml", "", true},
		{"csv", "", true},
	}
	for _, tc := range cases {
		got, err := ParseOutputFormat(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseOutputFormat(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOutputFormat(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func Test_setDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("default log level = %q, want warn", cfg.Log.Level)
	}
	if cfg.App.Name != "repoview" {
		t.Errorf("default app name = %q", cfg.App.Name)
	}
	if !cfg.Scan.RespectGitignore {
		t.Error("gitignore handling must default to enabled")
	}
}
