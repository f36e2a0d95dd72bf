package tart

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDocuments renders every document under template_tests/ and compares
// the output against the .out golden file next to it.
func TestDocuments(t *testing.T) {
	matches, err := filepath.Glob("./template_tests/*.tart")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("no test documents found")
	}
	for idx, match := range matches {
		t.Logf("[%3d] Testing '%s'", idx+1, match)
		tpl, err := FromFile(match)
		if err != nil {
			t.Fatal(err)
		}
		testOut, err := os.ReadFile(match + ".out")
		if err != nil {
			t.Fatal(err)
		}
		tplOut, err := tpl.Execute()
		if err != nil {
			t.Fatal(err)
		}
		if string(testOut) != tplOut {
			t.Logf("rendered = '%s'\n", tplOut)
			t.Fatalf("Failed: testOut != tplOut for %s", match)
		}
	}
}
