package main

import (
	"os"
	"testing"
)

// chdir cambia el directorio de trabajo durante el test y lo restaura al
// terminar; equivale a testing.T.Chdir (Go 1.24) en toolchains anteriores.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir: restaurar %s: %v", prev, err)
		}
	})
}
