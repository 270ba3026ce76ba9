package common

import (
	"os"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// mirroring t.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func TestWithDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	if settings.Language != "en-US" {
		t.Errorf("Expected default language to be en-US, got %s", settings.Language)
	}

	if settings.Instructions != "" {
		t.Errorf("Expected empty Instructions by default, got %s", settings.Instructions)
	}
}

func TestWithYamlFileAbsent(t *testing.T) {
	chdir(t, t.TempDir())

	settings := WithYamlFile()
	if settings != WithDefaultSettings() {
		t.Errorf("Expected defaults when no settings file exists, got %+v", settings)
	}
}

func TestWithYamlFile(t *testing.T) {
	chdir(t, t.TempDir())

	content := "language: de-DE\ninstructions: Mention ticket numbers.\n"
	if err := os.WriteFile("chng.yml", []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings := WithYamlFile()
	if settings.Language != "de-DE" {
		t.Errorf("Expected language de-DE, got %s", settings.Language)
	}
	if settings.Instructions != "Mention ticket numbers." {
		t.Errorf("Expected instructions from file, got %s", settings.Instructions)
	}
}

func TestWithYamlFileInvalid(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.WriteFile("chng.yml", []byte("language: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings := WithYamlFile()
	if settings != WithDefaultSettings() {
		t.Errorf("Expected defaults for unparseable settings file, got %+v", settings)
	}
}
