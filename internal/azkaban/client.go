package azkaban

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/flowkit/internal/configs"
	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
)

// Client talks to one Azkaban server with one set of credentials.
type Client struct {
	baseURL      string
	username     string
	password     string
	failureEmail string
	httpClient   *http.Client
}

// New creates a client from the resolved configuration.
func New(config *configs.Config) *Client {
	return &Client{
		baseURL:      strings.TrimRight(config.ServerURL, "/"),
		username:     config.Username,
		password:     config.Password,
		failureEmail: config.FailureEmail,
		httpClient:   &http.Client{Timeout: config.Timeout()},
	}
}

type loginResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session.id"`
	Error     string `json:"error"`
}

// UploadResult is the scheduler's answer to a successful project upload.
type UploadResult struct {
	ProjectID string `json:"projectId"`
	Version   string `json:"version"`
	Error     string `json:"error"`
}

// ExecuteResult is the scheduler's answer to a successful executeFlow call.
type ExecuteResult struct {
	Project string `json:"project"`
	Flow    string `json:"flow"`
	ExecID  int64  `json:"execid"`
	Error   string `json:"error"`
}

// Login exchanges the configured credentials for a session id.
//
// Returns ErrAuthenticationFailed (with the raw response body) when the
// scheduler rejects the credentials or the response is missing the status
// or session id fields.
func (c *Client) Login(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("action", "login")
	form.Set("username", c.username)
	form.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: unparseable login response: %s", flowerrors.ErrAuthenticationFailed, body)
	}
	if parsed.Error != "" || parsed.Status != "success" || parsed.SessionID == "" {
		return "", fmt.Errorf("%w: %s", flowerrors.ErrAuthenticationFailed, body)
	}
	return parsed.SessionID, nil
}

// UploadProject submits a zip archive as the named project.
//
// Returns ErrUploadFailed (with the raw response body) when the scheduler
// reports an error or answers with a non-2xx status.
func (c *Client) UploadProject(ctx context.Context, sessionID, project, zipPath string) (*UploadResult, error) {
	file, err := os.Open(zipPath)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", zipPath, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("session.id", sessionID); err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	if err := form.WriteField("ajax", "upload"); err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	if err := form.WriteField("project", project); err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}

	// The scheduler requires the file part to be tagged application/zip, so
	// the part header is written by hand instead of CreateFormFile.
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(zipPath)))
	header.Set("Content-Type", "application/zip")
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", zipPath, err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/manager", &buf)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed UploadResult
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: unparseable upload response: %s", flowerrors.ErrUploadFailed, body)
	}
	if status >= 400 || parsed.Error != "" {
		return nil, fmt.Errorf("%w: %s", flowerrors.ErrUploadFailed, body)
	}
	return &parsed, nil
}

// ExecuteFlow triggers a flow inside an uploaded project. failureAction is
// fixed to finishPossible so independent branches keep running on partial
// failure, and the configured failure email overrides the project's own
// notification list.
//
// Returns ErrExecutionFailed (with the raw response body) when the scheduler
// reports an error.
func (c *Client) ExecuteFlow(ctx context.Context, sessionID, project, flow string) (*ExecuteResult, error) {
	params := url.Values{}
	params.Set("session.id", sessionID)
	params.Set("ajax", "executeFlow")
	params.Set("project", project)
	params.Set("flow", flow)
	params.Set("failureAction", "finishPossible")
	params.Set("failureEmailsOverride", "true")
	params.Set("failureEmails", c.failureEmail)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/executor?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building execute request: %w", err)
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed ExecuteResult
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: unparseable execute response: %s", flowerrors.ErrExecutionFailed, body)
	}
	if status >= 400 || parsed.Error != "" {
		return nil, fmt.Errorf("%w: %s", flowerrors.ErrExecutionFailed, body)
	}
	return &parsed, nil
}

// do sends the request and returns the status code and raw body. Transport
// failures (refused connections, DNS errors, timeouts) map to
// ErrRemoteUnavailable.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", flowerrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading response: %v", flowerrors.ErrRemoteUnavailable, err)
	}
	return resp.StatusCode, body, nil
}
