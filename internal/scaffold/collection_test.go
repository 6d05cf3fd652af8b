package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
)

func TestCreateCollectionTreeShape(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateCollection(tempDir, "daily_reporting"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	root := filepath.Join(tempDir, "daily_reporting")
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("Failed to read collection directory: %v", err)
	}

	files := 0
	dirs := 0
	for _, entry := range entries {
		if entry.IsDir() {
			dirs++
			if entry.Name() != "final_daily_reporting_job" {
				t.Errorf("Unexpected subdirectory %q", entry.Name())
			}
		} else {
			files++
		}
	}
	if files != 3 || dirs != 1 {
		t.Errorf("Expected 3 files and 1 subdirectory, got %d files and %d dirs", files, dirs)
	}

	for _, name := range []string{"daily_reporting.properties", "controller.job", "dynamic_params.sh"} {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			t.Errorf("Expected file %q: %v", name, err)
		}
	}

	finalDir := filepath.Join(root, "final_daily_reporting_job")
	finalEntries, err := os.ReadDir(finalDir)
	if err != nil {
		t.Fatalf("Failed to read final job directory: %v", err)
	}
	if len(finalEntries) != 2 {
		t.Errorf("Expected 2 files in final job directory, got %d", len(finalEntries))
	}
	for _, name := range []string{"final_daily_reporting_job.job", "final_daily_reporting_job.properties"} {
		if _, err := os.Stat(filepath.Join(finalDir, name)); err != nil {
			t.Errorf("Expected file %q: %v", name, err)
		}
	}
}

func TestCreateCollectionSubstitutesName(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateCollection(tempDir, "daily_reporting"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	props, err := os.ReadFile(filepath.Join(tempDir, "daily_reporting", "daily_reporting.properties"))
	if err != nil {
		t.Fatalf("Failed to read properties file: %v", err)
	}
	if !strings.Contains(string(props), "collection=daily_reporting") {
		t.Errorf("Properties file missing substituted collection name:\n%s", props)
	}

	script, err := os.ReadFile(filepath.Join(tempDir, "daily_reporting", "dynamic_params.sh"))
	if err != nil {
		t.Fatalf("Failed to read parameter script: %v", err)
	}
	if !strings.Contains(string(script), "JOB_OUTPUT_PROP_FILE") {
		t.Errorf("Parameter script should write to JOB_OUTPUT_PROP_FILE:\n%s", script)
	}
	if strings.Contains(string(script), "{{") {
		t.Errorf("Parameter script contains unrendered template markers:\n%s", script)
	}
}

func TestCreateCollectionScriptIsExecutable(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateCollection(tempDir, "daily_reporting"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(tempDir, "daily_reporting", "dynamic_params.sh"))
	if err != nil {
		t.Fatalf("Failed to stat parameter script: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("Expected dynamic_params.sh to be executable, mode is %v", info.Mode())
	}
}

func TestCreateCollectionEmptyName(t *testing.T) {
	err := CreateCollection(t.TempDir(), "")
	if !errors.Is(err, flowerrors.ErrMissingName) {
		t.Fatalf("Expected ErrMissingName, got %v", err)
	}
}

func TestCreateCollectionAlreadyExists(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateCollection(tempDir, "daily_reporting"); err != nil {
		t.Fatalf("First CreateCollection failed: %v", err)
	}

	// Drop a marker file so we can verify the second call mutates nothing.
	marker := filepath.Join(tempDir, "daily_reporting", "marker.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0o644); err != nil {
		t.Fatalf("Failed to write marker: %v", err)
	}

	err := CreateCollection(tempDir, "daily_reporting")
	if !errors.Is(err, flowerrors.ErrAlreadyExists) {
		t.Fatalf("Expected ErrAlreadyExists, got %v", err)
	}

	content, err := os.ReadFile(marker)
	if err != nil || string(content) != "keep" {
		t.Errorf("Second CreateCollection mutated the existing tree: %v %q", err, content)
	}
}

func TestCreateCollectionLeavesNoStaging(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateCollection(tempDir, "daily_reporting"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("Failed to read parent directory: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "daily_reporting" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only the collection directory, got %v", names)
	}
}
