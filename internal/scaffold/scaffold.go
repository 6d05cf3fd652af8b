package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
)

//go:embed templates
var templateFS embed.FS

// templateData is the substitution context available to template assets.
type templateData struct {
	Name string
}

// renderSpec maps one embedded template asset to its rendered location
// inside the target directory.
type renderSpec struct {
	asset string
	dest  string
	mode  os.FileMode
}

// FinalJobName returns the name of a collection's terminal job.
func FinalJobName(collection string) string {
	return "final_" + collection + "_job"
}

// QAJobName returns the name of a flow's validation job, the job that must
// be wired into the collection's final job dependency list.
func QAJobName(flow string) string {
	return flow + "_qa"
}

// createTree renders specs into a hidden staging directory under parent and
// renames it to parent/name once every file is in place.
func createTree(parent, name string, specs []renderSpec) error {
	if name == "" {
		return flowerrors.ErrMissingName
	}

	target := filepath.Join(parent, name)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%w: %s", flowerrors.ErrAlreadyExists, target)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", target, err)
	}

	staging, err := os.MkdirTemp(parent, "."+name+".staging-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	// No-op after a successful rename; removes the partial tree otherwise.
	defer os.RemoveAll(staging)

	data := templateData{Name: name}
	for _, spec := range specs {
		if err := renderFile(staging, spec, data); err != nil {
			return err
		}
	}

	if err := os.Rename(staging, target); err != nil {
		return fmt.Errorf("moving %s into place: %w", name, err)
	}
	return nil
}

func renderFile(dir string, spec renderSpec, data templateData) error {
	raw, err := templateFS.ReadFile(spec.asset)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", spec.asset, err)
	}

	tmpl, err := template.New(filepath.Base(spec.asset)).Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", spec.asset, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering template %s: %w", spec.asset, err)
	}

	dest := filepath.Join(dir, spec.dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", spec.dest, err)
	}
	if err := os.WriteFile(dest, buf.Bytes(), spec.mode); err != nil {
		return fmt.Errorf("writing %s: %w", spec.dest, err)
	}
	return nil
}
