package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	if got := embeddedDefault(); !reflect.DeepEqual(got, DefaultRunnerConfig()) {
		t.Errorf("embedded runner.yaml drifted from DefaultRunnerConfig:\n%+v\n%+v", got, DefaultRunnerConfig())
	}
	cfg := DefaultRunnerConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("session:\n  lives: 3\ntrack:\n  coin_offsets: [500]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Session.Lives != 3 {
		t.Errorf("lives: got %d, expected 3", cfg.Session.Lives)
	}
	if cfg.Session.BaseSpeed != 3.0 {
		t.Errorf("base speed should keep its default, got %f", cfg.Session.BaseSpeed)
	}
	if !reflect.DeepEqual(cfg.Track.CoinOffsets, []float64{500}) {
		t.Errorf("coin offsets: got %v, expected [500]", cfg.Track.CoinOffsets)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected error
	}{
		{"no lives", "session:\n  lives: 0\n", ErrNoLives},
		{"empty gap range", "track:\n  obstacle_gap_min: 800\n  obstacle_gap_max: 700\n", ErrBadGap},
		{"no coin offsets", "track:\n  coin_offsets: []\n", ErrNoCoinOffsets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.expected) {
				t.Errorf("got %v, expected %v", err, tt.expected)
			}
		})
	}

	if _, err := Parse([]byte("session: [not, a, map]")); err == nil {
		t.Error("expected yaml error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	writeFile(t, path, "difficulty:\n  enabled: false\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("expected difficulty disabled")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("with no files the embedded default should be used")
	}

	writeFile(t, filepath.Join(work, "configs", "runner.yaml"), "session:\n  lives: 4\n")
	if cfg, _ := LoadRunner(""); cfg.Session.Lives != 4 {
		t.Errorf("local config: got %d lives, expected 4", cfg.Session.Lives)
	}

	writeFile(t, filepath.Join(home, ".tui-runner", "configs", "runner.yaml"), "session:\n  lives: 6\n")
	if cfg, _ := LoadRunner(""); cfg.Session.Lives != 6 {
		t.Errorf("user config: got %d lives, expected 6", cfg.Session.Lives)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "session:\n  lives: 9\n")
	if cfg, _ := LoadRunner(custom); cfg.Session.Lives != 9 {
		t.Errorf("custom config: got %d lives, expected 9", cfg.Session.Lives)
	}
}

func TestLoadRunnerCustomPathMustLoad(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("a missing --config file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "session:\n  lives: -1\n")
	if _, err := LoadRunner(bad); !errors.Is(err, ErrNoLives) {
		t.Errorf("got %v, expected ErrNoLives", err)
	}
}

func TestLoadRunnerSkipsBrokenUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	writeFile(t, filepath.Join(home, ".tui-runner", "configs", "runner.yaml"), "session:\n  lives: 0\n")

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Session.Lives != 5 {
		t.Errorf("lives: got %d, expected the default 5", cfg.Session.Lives)
	}
}

func TestMarshalLoadsBack(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("dumped config does not load back:\n%s", data)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		baseSpeed float64
		speedUps  bool
	}{
		{DifficultyEasy, 7, 2.5, true},
		{DifficultyNormal, 5, 3.0, true},
		{DifficultyHard, 3, 4.0, true},
		{DifficultyFixed, 5, 3.0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tt.preset)

			if cfg.Session.Lives != tt.lives || cfg.Session.BaseSpeed != tt.baseSpeed {
				t.Errorf("got %d lives at %.1f, expected %d at %.1f",
					cfg.Session.Lives, cfg.Session.BaseSpeed, tt.lives, tt.baseSpeed)
			}
			if cfg.Difficulty.Enabled != tt.speedUps {
				t.Errorf("speed-ups: got %v, expected %v", cfg.Difficulty.Enabled, tt.speedUps)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if ParsePreset(s) != DifficultyPreset(s) {
			t.Errorf("ParsePreset(%q) = %q", s, ParsePreset(s))
		}
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
