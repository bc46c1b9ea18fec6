package ldraw

import "testing"

func TestParsePartLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantType string
		wantCol  string
		wantErr  bool
	}{
		{
			name:     "simple brick",
			line:     "1 4 0 -24 0 1 0 0 0 1 0 0 0 1 3001.dat",
			wantType: "3001.dat",
			wantCol:  "4",
		},
		{
			name:     "submodel with spaces",
			line:     "1 16 0 0 0 1 0 0 0 1 0 0 0 1 left wing.ldr",
			wantType: "left wing.ldr",
			wantCol:  "16",
		},
		{
			name:     "subdirectory reference",
			line:     "1 0 10 0 10 0 0 -1 0 1 0 1 0 0 s\\4744s01.dat",
			wantType: "s\\4744s01.dat",
			wantCol:  "0",
		},
		{
			name:    "comment line",
			line:    "0 this is a comment",
			wantErr: true,
		},
		{
			name:    "truncated",
			line:    "1 4 0 -24 0 1 0 0",
			wantErr: true,
		},
		{
			name:    "bad matrix field",
			line:    "1 4 0 -24 0 1 x 0 0 1 0 0 0 1 3001.dat",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePartLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePartLine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if p.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", p.Type, tt.wantType)
			}
			if p.Color != tt.wantCol {
				t.Errorf("Color = %q, want %q", p.Color, tt.wantCol)
			}
		})
	}
}

func TestPartLineRoundTrip(t *testing.T) {
	line := "1 4 0 -24 0 1 0 0 0 1 0 0 0 1 3001.dat"
	p, err := ParsePartLine(line)
	if err != nil {
		t.Fatalf("ParsePartLine() error = %v", err)
	}
	again, err := ParsePartLine(p.String())
	if err != nil {
		t.Fatalf("re-parse error = %v", err)
	}
	if again != p {
		t.Errorf("round trip = %+v, want %+v", again, p)
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		line string
		want LineType
	}{
		{"0 comment", LineTypeComment},
		{"1 16 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat", LineTypePart},
		{"3 16 0 0 0 1 1 1 2 2 2", LineTypeGeometry},
		{"", LineTypeOther},
		{"garbage", LineTypeOther},
	}
	for _, tt := range tests {
		if got := TypeOf(tt.line); got != tt.want {
			t.Errorf("TypeOf(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3001.dat", "3001"},
		{"S\\4744S01.DAT", "4744s01"},
		{"chassis.ldr", "chassis"},
		{"parts/3001.dat", "3001"},
	}
	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
