package domain

// DocumentLoader parses a run-configuration file into a document tree.
// A file that cannot be parsed at all yields a *ParseError.
type DocumentLoader interface {
	Load(path string) (any, error)
}

// SchemaLoader compiles an external schema description into a SchemaNode
// tree.
type SchemaLoader interface {
	Load(path string) (SchemaNode, error)
}

// RepoInfo reports git metadata for the directory holding a run
// configuration.
type RepoInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}

// JobLogger appends a machine-readable record of a validation run.
type JobLogger interface {
	LogReport(report *Report) error
	Close() error
}
