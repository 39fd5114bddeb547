package parse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIntConv(t *testing.T) {
	var x int64
	ok := intConv(&x)("41891")
	if !ok {
		t.Errorf("intConv unsuccessful on valid input.")
	}
	if x != 41891 {
		t.Errorf("intConv did not write input to pointer.")
	}
	ok = intConv(&x)("meow")
	if ok {
		t.Errorf("intConv successful on invalid input.")
	}
}

func TestFloatConv(t *testing.T) {
	var x float64
	ok := floatConv(&x)("41891.0")
	if !ok {
		t.Errorf("floatConv unsuccessful on valid input.")
	}
	if x != 41891.0 {
		t.Errorf("floatConv did not write input to pointer.")
	}
	ok = floatConv(&x)("meow")
	if ok {
		t.Errorf("floatConv successful on invalid input.")
	}
}

func TestStringConv(t *testing.T) {
	var x string
	ok := stringConv(&x)("  41891")
	if !ok {
		t.Errorf("stringConv unsuccessful on valid input.")
	}
	if x != "41891" {
		t.Errorf("stringConv did not write input to pointer.")
	}
}

func TestBoolConv(t *testing.T) {
	var x bool
	ok := boolConv(&x)("true")
	if !ok || !x {
		t.Errorf("boolConv unsuccessful on valid input.")
	}
	ok = boolConv(&x)("meow")
	if ok {
		t.Errorf("boolConv successful on invalid input.")
	}
}

func TestFloatsConv(t *testing.T) {
	var xs []float64
	ok := floatsConv(&xs)("1, 2.5, 3")
	if !ok {
		t.Errorf("floatsConv unsuccessful on valid input.")
	}
	if len(xs) != 3 || xs[0] != 1 || xs[1] != 2.5 || xs[2] != 3 {
		t.Errorf("floatsConv parsed '1, 2.5, 3' to %v.", xs)
	}
	ok = floatsConv(&xs)("1, meow")
	if ok {
		t.Errorf("floatsConv successful on invalid input.")
	}
}

func writeConfig(t *testing.T, text string) string {
	fname := filepath.Join(t.TempDir(), "test.config")
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatalf(err.Error())
	}
	return fname
}

func TestReadConfig(t *testing.T) {
	fname := writeConfig(t, `[mute]
# A comment.
Velocity = 330   # A trailing comment.
TaperLength = 20
Table = mutes.yaml
`)

	var (
		velocity float64
		taper    int64
		table    string
		unset    string
	)
	vars := NewConfigVars("mute")
	vars.Float(&velocity, "Velocity", 0)
	vars.Int(&taper, "TaperLength", 0)
	vars.String(&table, "Table", "")
	vars.String(&unset, "Unset", "default")

	if err := ReadConfig(fname, vars); err != nil {
		t.Fatalf("ReadConfig returned '%s'.", err.Error())
	}
	if velocity != 330 || taper != 20 || table != "mutes.yaml" {
		t.Errorf("ReadConfig parsed (%g, %d, '%s').", velocity, taper, table)
	}
	if unset != "default" {
		t.Errorf("ReadConfig overwrote an unassigned variable.")
	}
}

func TestReadConfigErrors(t *testing.T) {
	var x int64

	tests := []struct {
		text string
	}{
		{"TaperLength = 20\n"},                  // missing header
		{"[wrong]\nTaperLength = 20\n"},         // wrong header
		{"[mute]\nTaperLength\n"},               // not an assignment
		{"[mute]\nMeow = 20\n"},                 // unknown variable
		{"[mute]\nTaperLength = 1\nTaperLength = 2\n"}, // duplicate
		{"[mute]\nTaperLength = meow\n"},        // unconvertible
	}

	for i := range tests {
		fname := writeConfig(t, tests[i].text)
		vars := NewConfigVars("mute")
		vars.Int(&x, "TaperLength", 0)
		if err := ReadConfig(fname, vars); err == nil {
			t.Errorf("ReadConfig accepted invalid config %d.", i)
		}
	}
}
