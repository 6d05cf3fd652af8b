package scaffold

import "path/filepath"

// CreateCollection scaffolds a new collection directory under parent.
//
// The tree holds the collection's global properties file, the controller job
// with its dynamic parameter script, and the final_<name>_job subdirectory
// with the terminal job descriptor and its properties.
//
// Returns ErrMissingName for an empty name and ErrAlreadyExists if the
// directory is already present.
func CreateCollection(parent, name string) error {
	finalJob := FinalJobName(name)
	specs := []renderSpec{
		{asset: "templates/collection/collection.properties.tmpl", dest: name + ".properties", mode: 0o644},
		{asset: "templates/collection/controller.job.tmpl", dest: "controller.job", mode: 0o644},
		{asset: "templates/collection/dynamic_params.sh.tmpl", dest: "dynamic_params.sh", mode: 0o755},
		{asset: "templates/collection/final.job.tmpl", dest: filepath.Join(finalJob, finalJob+".job"), mode: 0o644},
		{asset: "templates/collection/final.properties.tmpl", dest: filepath.Join(finalJob, finalJob+".properties"), mode: 0o644},
	}
	return createTree(parent, name, specs)
}
