package catppuccin

import (
	"testing"

	"github.com/cattint/cattint/internal/colour"
)

func TestParseFlavor(t *testing.T) {
	tests := []struct {
		in      string
		want    Flavor
		wantErr bool
	}{
		{in: "mocha", want: FlavorMocha},
		{in: "  Latte ", want: FlavorLatte},
		{in: "FRAPPE", want: FlavorFrappe},
		{in: "frappé", want: FlavorFrappe},
		{in: "macchiato", want: FlavorMacchiato},
		{in: "mokka", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFlavor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFlavor(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFlavor(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlavor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAccent(t *testing.T) {
	got, err := ParseAccent(" Mauve ")
	if err != nil || got != AccentMauve {
		t.Fatalf("ParseAccent(Mauve) = %v, %v", got, err)
	}
	if _, err := ParseAccent("purple"); err == nil {
		t.Fatal("ParseAccent(purple): expected error")
	}
}

func TestPaletteCompleteness(t *testing.T) {
	for _, f := range Flavors {
		p := Palette(f)
		if p == nil {
			t.Fatalf("Palette(%s) = nil", f)
		}
		if len(p.Accents) != len(Accents) {
			t.Errorf("%s: %d accents, want %d", f, len(p.Accents), len(Accents))
		}
		if len(p.Neutrals) != len(NeutralNames) {
			t.Errorf("%s: %d neutrals, want %d", f, len(p.Neutrals), len(NeutralNames))
		}
		for _, name := range NeutralNames {
			if _, ok := p.Neutrals[name]; !ok {
				t.Errorf("%s: missing neutral %q", f, name)
			}
		}
	}
}

func TestOnlyLatteIsLight(t *testing.T) {
	for _, f := range Flavors {
		if got, want := f.IsLight(), f == FlavorLatte; got != want {
			t.Errorf("%s.IsLight() = %v, want %v", f, got, want)
		}
	}
}

func TestMochaKnownValues(t *testing.T) {
	p := Palette(FlavorMocha)
	if got := p.Accent(AccentBlue).Hex(); got != "#89b4fa" {
		t.Errorf("mocha blue = %s, want #89b4fa", got)
	}
	if got := p.Neutral(NeutralBase).Hex(); got != "#1e1e2e" {
		t.Errorf("mocha base = %s, want #1e1e2e", got)
	}
}

func TestSchemeNoSelfPairingOrDuplicates(t *testing.T) {
	s := NewScheme()
	for _, f := range Flavors {
		for _, a := range Accents {
			set := s.Set(f, a)
			members := []Accent{set.Bi1, set.Bi2, set.Co1, set.Co2}
			seen := map[Accent]bool{a: true}
			for _, m := range members {
				if m == "" {
					t.Fatalf("%s/%s: empty companion in %+v", f, a, set)
				}
				if seen[m] {
					t.Errorf("%s/%s: companion %s repeats or equals the main accent (%+v)", f, a, m, set)
				}
				seen[m] = true
			}
		}
	}
}

func TestSchemeDeterministic(t *testing.T) {
	a := NewScheme()
	b := NewScheme()
	for _, f := range Flavors {
		for _, acc := range Accents {
			if a.Set(f, acc) != b.Set(f, acc) {
				t.Fatalf("%s/%s: schemes differ across constructions", f, acc)
			}
		}
	}
}

func TestNearestAccentLAB(t *testing.T) {
	tests := []struct {
		hex  string
		want Accent
	}{
		{hex: "#89b4fa", want: AccentBlue},  // exact mocha blue
		{hex: "#cba6f7", want: AccentMauve}, // exact mocha mauve
		{hex: "#58a6ff", want: AccentBlue},  // GitHub link blue
		{hex: "#a6e3a1", want: AccentGreen}, // exact mocha green
		{hex: "#f5e0dc", want: AccentRosewater},
	}

	for _, tt := range tests {
		rgb, ok := colour.ParseHex(tt.hex)
		if !ok {
			t.Fatalf("bad fixture %q", tt.hex)
		}
		if got := NearestAccentLAB(rgb); got != tt.want {
			t.Errorf("NearestAccentLAB(%s) = %s, want %s", tt.hex, got, tt.want)
		}
	}
}
