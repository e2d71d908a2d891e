package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLibraryHasEveryKind(t *testing.T) {
	for _, kind := range AllKinds {
		def, ok := EnemyLibrary[kind]
		if !ok {
			t.Fatalf("missing %q", kind)
		}
		if def.ID != kind {
			t.Errorf("%q: id %q", kind, def.ID)
		}
	}
}

func TestParseRejectsIncompleteLibrary(t *testing.T) {
	data := []byte(`[{"id": "red", "name": "Grunt", "health": 20, "speed": 2, "radius": 15}]`)
	_, err := ParseEnemyDefinitions(data)
	if err == nil || !strings.Contains(err.Error(), "missing definition") {
		t.Fatalf("want missing definition error, got %v", err)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero health", `[{"id": "red", "health": 0, "radius": 15}]`},
		{"zero radius", `[{"id": "red", "health": 10, "radius": 0}]`},
		{"negative speed", `[{"id": "red", "health": 10, "radius": 5, "speed": -1}]`},
		{"not json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEnemyDefinitions([]byte(tt.data)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadEnemyDefinitionsReplacesLibrary(t *testing.T) {
	saved := EnemyLibrary
	defer func() { EnemyLibrary = saved }()

	data := strings.Replace(string(defaultEnemies), `"health": 20,`, `"health": 99,`, 1)
	path := filepath.Join(t.TempDir(), "enemies.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatal(err)
	}
	if got := EnemyLibrary[KindRed].Health; got != 99 {
		t.Fatalf("red health = %v, want 99", got)
	}

	if err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestVisualsRGBA(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff4444", color.RGBA{255, 68, 68, 255}},
		{"#00000080", color.RGBA{0, 0, 0, 128}},
		{"garbage", color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := (Visuals{Color: tt.in}).RGBA(); got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPickEnemyKind(t *testing.T) {
	tests := []struct {
		wave int
		roll float64
		want EnemyKind
	}{
		{1, 0.0, KindRed},
		{2, 0.1, KindRedOrbiter},
		{2, 0.5, KindRed},
		{3, 0.22, KindBlue},
		{5, 0.3, KindYellow},
		{6, 0.4, KindPurple},
		{7, 0.5, KindGreen},
		{8, 0.6, KindWhite},
		{8, 0.1, KindWhite},
		{20, 0.99, KindRed},
	}
	for _, tt := range tests {
		if got := PickEnemyKind(tt.wave, tt.roll); got != tt.want {
			t.Errorf("wave %d roll %v: got %q, want %q", tt.wave, tt.roll, got, tt.want)
		}
	}
}

func TestIntroForWave(t *testing.T) {
	seen := map[EnemyKind]bool{}
	if _, _, ok := IntroForWave(1, seen); ok {
		t.Fatal("wave 1 introduces nothing")
	}
	kind, intro, ok := IntroForWave(3, seen)
	if !ok || kind != KindBlue || intro.Name != "TANK UNIT" {
		t.Fatalf("wave 3: got %q %q %v", kind, intro.Name, ok)
	}
	seen[KindBlue] = true
	if _, _, ok := IntroForWave(3, seen); ok {
		t.Fatal("a seen kind is not introduced again")
	}
}
