package scaffold

// CreateFlow scaffolds a new flow directory under parent, which is expected
// to be a collection directory.
//
// The three job descriptors form a linear chain: <name>_hive extracts,
// <name>_sqoop transfers and depends on the hive job, <name>_qa validates
// and depends on the sqoop job. The qa job is NOT wired into the
// collection's final job here; that is a deliberate manual step, and callers
// should remind the user to do it.
//
// Returns ErrMissingName for an empty name and ErrAlreadyExists if the
// directory is already present.
func CreateFlow(parent, name string) error {
	specs := []renderSpec{
		{asset: "templates/flow/hive.job.tmpl", dest: name + "_hive.job", mode: 0o644},
		{asset: "templates/flow/sqoop.job.tmpl", dest: name + "_sqoop.job", mode: 0o644},
		{asset: "templates/flow/qa.job.tmpl", dest: name + "_qa.job", mode: 0o644},
		{asset: "templates/flow/flow.properties.tmpl", dest: name + ".properties", mode: 0o644},
	}
	return createTree(parent, name, specs)
}
