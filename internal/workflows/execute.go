package workflows

import (
	"context"

	"github.com/PolarWolf314/flowkit/internal/azkaban"
	"github.com/PolarWolf314/flowkit/internal/configs"
	logger "github.com/PolarWolf314/flowkit/internal/logging"
	"github.com/PolarWolf314/flowkit/internal/scaffold"
)

// ExecuteOptions configures the execute workflow.
type ExecuteOptions struct {
	// Collection is the collection directory name under the working directory.
	Collection string

	// Config holds the resolved scheduler connection settings.
	Config *configs.Config

	// Logger receives step-by-step diagnostics.
	Logger logger.Logger
}

// Execute ships the collection and triggers its final job flow.
//
// The full upload sequence always runs first; execute is never issued
// against a possibly stale remote project. The execute call then obtains
// its own session, independent of the one the upload used.
func Execute(ctx context.Context, opts ExecuteOptions) (*azkaban.ExecuteResult, error) {
	if _, err := Upload(ctx, UploadOptions(opts)); err != nil {
		return nil, err
	}

	client := azkaban.New(opts.Config)

	opts.Logger.Debugf("Requesting execution session from %s", opts.Config.ServerURL)
	sessionID, err := client.Login(ctx)
	if err != nil {
		return nil, err
	}

	flow := scaffold.FinalJobName(opts.Collection)
	opts.Logger.Debugf("Executing flow %s in project %s", flow, opts.Collection)
	result, err := client.ExecuteFlow(ctx, sessionID, opts.Collection, flow)
	if err != nil {
		return nil, err
	}

	opts.Logger.Infof("Execution %d started for flow %s", result.ExecID, flow)
	return result, nil
}
