package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, text string) string {
	fname := filepath.Join(t.TempDir(), "test.config")
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatalf(err.Error())
	}
	return fname
}

// The example config printed by the help mode must itself be a valid config
// file.
func TestExampleConfigParses(t *testing.T) {
	config := &GlobalConfig{}
	fname := writeConfig(t, config.ExampleConfig())
	if err := config.ReadConfig(fname); err != nil {
		t.Errorf("The example config doesn't parse: %s", err.Error())
	}

	apply := &ApplyConfig{}
	fname = writeConfig(t, apply.ExampleConfig())
	if err := apply.ReadConfig(fname); err != nil {
		t.Errorf("The example apply config doesn't parse: %s", err.Error())
	}
}

func TestGlobalConfigValidation(t *testing.T) {
	tests := []struct {
		text  string
		valid bool
	}{
		{"[config]\nMuteTable = m.yaml\n", true},
		{"[config]\n", false}, // no mute table
		{"[config]\nMuteTable = m.yaml\nMuteMode = sideways\n", false},
		{"[config]\nMuteTable = m.yaml\nTaperLength = -1\n", false},
		{"[config]\nMuteTable = m.yaml\nGridNInline = 0\n", false},
		{"[config]\nMuteTable = m.yaml\nOffsetExtrapolation = meow\n", false},
		{"[config]\nMuteTable = m.yaml\nMuteMode = linear\n", false},
		{"[config]\nMuteTable = m.yaml\nMuteMode = linear\n" +
			"Velocity = 330\n", true},
		{"[config]\nMuteTable = m.yaml\nMuteMode = hyperbolic\n" +
			"Velocity = -1\n", false},
	}

	for i := range tests {
		config := &GlobalConfig{}
		fname := writeConfig(t, tests[i].text)
		err := config.ReadConfig(fname)
		if (err == nil) != tests[i].valid {
			t.Errorf("Config %d validity was %v.", i, err == nil)
		}
	}
}
