package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSetupSavesAllFields(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	input := strings.NewReader("http://localhost/v1\n11434\nsk-secret\nllama2\n")
	var output bytes.Buffer

	creds, err := RunSetup(input, &output)
	if err != nil {
		t.Fatalf("RunSetup failed: %v", err)
	}

	want := Credentials{
		URL:    "http://localhost/v1",
		Port:   "11434",
		APIKey: "sk-secret",
		Model:  "llama2",
	}
	if creds != want {
		t.Errorf("Expected %+v, got %+v", want, creds)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after setup failed: %v", err)
	}
	if loaded != want {
		t.Errorf("Expected persisted config %+v, got %+v", want, loaded)
	}
}

func TestRunSetupKeepsExistingDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	existing := Credentials{
		URL:    "https://api.openai.com/v1",
		Port:   "8443",
		APIKey: "sk-old",
		Model:  "gpt-4",
	}
	if err := existing.Save(); err != nil {
		t.Fatalf("Failed to seed existing config: %v", err)
	}

	// Empty answers keep every existing value.
	input := strings.NewReader("\n\n\n\n")
	var output bytes.Buffer

	creds, err := RunSetup(input, &output)
	if err != nil {
		t.Fatalf("RunSetup failed: %v", err)
	}
	if creds != existing {
		t.Errorf("Expected existing values to be kept, got %+v", creds)
	}
}

func TestRunSetupOffersDefaultModel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	input := strings.NewReader("http://localhost/v1\n\n\n\n")
	var output bytes.Buffer

	creds, err := RunSetup(input, &output)
	if err != nil {
		t.Fatalf("RunSetup failed: %v", err)
	}

	if creds.Model != DefaultModel {
		t.Errorf("Expected default model %q, got %q", DefaultModel, creds.Model)
	}

	if !strings.Contains(output.String(), DefaultModel) {
		t.Errorf("Expected prompt output to offer default model %q", DefaultModel)
	}
}

func TestRunSetupWarnsOnEmptyValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// URL left empty, key left empty.
	input := strings.NewReader("\n\n\nllama2\n")
	var output bytes.Buffer

	if _, err := RunSetup(input, &output); err != nil {
		t.Fatalf("RunSetup failed: %v", err)
	}

	got := output.String()
	if !strings.Contains(got, "URL is empty") {
		t.Error("Expected warning about empty URL")
	}
	if !strings.Contains(got, "API key is empty") {
		t.Error("Expected warning about empty API key")
	}
}
