package workflows

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/PolarWolf314/flowkit/internal/archive"
	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
	"github.com/PolarWolf314/flowkit/internal/scaffold"
)

func executeOptions(t *testing.T, serverURL, collection string) ExecuteOptions {
	t.Helper()
	return ExecuteOptions(stubOptions(t, serverURL, collection))
}

func TestExecuteRunsUploadFirst(t *testing.T) {
	chdirTemp(t)

	if err := scaffold.CreateCollection(".", "daily_reporting"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	stub := successStub()
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	result, err := Execute(context.Background(), executeOptions(t, server.URL, "daily_reporting"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if stub.uploads != 1 {
		t.Errorf("Execute must re-upload the collection, got %d uploads", stub.uploads)
	}
	// Two independent sessions: one for the upload, one for the execute call.
	if stub.logins != 2 {
		t.Errorf("Expected 2 logins, got %d", stub.logins)
	}
	if stub.executedFlow != "final_daily_reporting_job" {
		t.Errorf("Expected the final job flow, got %q", stub.executedFlow)
	}
	if result.ExecID != 55 {
		t.Errorf("Expected execid 55, got %d", result.ExecID)
	}
	if _, err := os.Stat(archive.ZipPath("daily_reporting")); !os.IsNotExist(err) {
		t.Errorf("Archive left behind after execute: %v", err)
	}
}

func TestExecuteStopsWhenUploadFails(t *testing.T) {
	chdirTemp(t)

	if err := scaffold.CreateCollection(".", "daily_reporting"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	stub := successStub()
	stub.uploadResponse = `{"error": "Installation Failed."}`
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	_, err := Execute(context.Background(), executeOptions(t, server.URL, "daily_reporting"))
	if !errors.Is(err, flowerrors.ErrUploadFailed) {
		t.Fatalf("Expected ErrUploadFailed, got %v", err)
	}
	if stub.executes != 0 {
		t.Errorf("Execute must not be issued after a failed upload, got %d", stub.executes)
	}
}

func TestExecuteRejection(t *testing.T) {
	chdirTemp(t)

	if err := scaffold.CreateCollection(".", "daily_reporting"); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	stub := successStub()
	stub.executeResponse = `{"error": "Flow cannot be found"}`
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	_, err := Execute(context.Background(), executeOptions(t, server.URL, "daily_reporting"))
	if !errors.Is(err, flowerrors.ErrExecutionFailed) {
		t.Fatalf("Expected ErrExecutionFailed, got %v", err)
	}
}
