package render

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: "yml", want: FormatYAML},
		{in: "yaml", want: FormatYAML},
		{in: " toml ", want: FormatTOML},
		{in: "ts", want: FormatMTS},
		{in: "mts", want: FormatMTS},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("docs/.vitepress/config.yml"); err != nil || f != FormatYAML {
		t.Errorf("FormatFromPath(config.yml) = %q, %v", f, err)
	}
	if _, err := FormatFromPath("Makefile"); err == nil {
		t.Error("FormatFromPath(Makefile) should fail")
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatMTS.FileName() != "config.mts" {
		t.Errorf("FileName() = %q", FormatMTS.FileName())
	}
	if FormatTOML.FileName() != "config.toml" {
		t.Errorf("FileName() = %q", FormatTOML.FileName())
	}
	if FormatMTS.Decodable() {
		t.Error("mts should not be decodable")
	}
	if FormatJSON.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q", FormatJSON.ContentType())
	}
}
