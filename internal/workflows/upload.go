package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/flowkit/internal/archive"
	"github.com/PolarWolf314/flowkit/internal/azkaban"
	"github.com/PolarWolf314/flowkit/internal/configs"
	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
	logger "github.com/PolarWolf314/flowkit/internal/logging"
)

// UploadOptions configures the upload workflow.
type UploadOptions struct {
	// Collection is the collection directory name under the working directory.
	// The remote project takes the same name.
	Collection string

	// Config holds the resolved scheduler connection settings.
	Config *configs.Config

	// Logger receives step-by-step diagnostics.
	Logger logger.Logger
}

// Upload zips the collection and submits it to the scheduler as a project
// of the same name: archive, then a fresh login, then the multipart upload.
//
// The archive is a disposable artifact and is removed on every exit path,
// success or failure, so no stale zip survives the attempt.
//
// Returns ErrDirectoryNotFound if the collection directory is missing, and
// the azkaban package's errors for remote failures.
func Upload(ctx context.Context, opts UploadOptions) (*azkaban.UploadResult, error) {
	info, err := os.Stat(opts.Collection)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", flowerrors.ErrDirectoryNotFound, opts.Collection)
		}
		return nil, fmt.Errorf("checking collection %s: %w", opts.Collection, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", flowerrors.ErrDirectoryNotFound, opts.Collection)
	}

	if _, err := os.Stat(archive.ZipPath(opts.Collection)); err == nil {
		opts.Logger.Infof("Replacing stale archive %s", archive.ZipPath(opts.Collection))
	}

	opts.Logger.Debugf("Archiving collection %s", opts.Collection)
	zipPath, err := archive.Build(opts.Collection)
	if err != nil {
		return nil, err
	}
	defer func() {
		opts.Logger.Debugf("Removing archive %s", zipPath)
		if err := archive.Remove(zipPath); err != nil {
			opts.Logger.Warnf("Failed to remove archive: %v", err)
		}
	}()

	client := azkaban.New(opts.Config)

	opts.Logger.Debugf("Requesting session from %s", opts.Config.ServerURL)
	sessionID, err := client.Login(ctx)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debugf("Uploading %s as project %s", zipPath, opts.Collection)
	result, err := client.UploadProject(ctx, sessionID, opts.Collection, zipPath)
	if err != nil {
		return nil, err
	}

	opts.Logger.Infof("Uploaded project %s (id %s, version %s)", opts.Collection, result.ProjectID, result.Version)
	return result, nil
}
