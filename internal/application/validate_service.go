package application

import (
	"fmt"
	"path/filepath"

	"github.com/groundtrack/runcheck/internal/domain"
)

// ValidateService orchestrates the validation pipeline:
// load document -> resolve schema -> validate -> attach git metadata -> log.
type ValidateService struct {
	documents domain.DocumentLoader
	schemas   domain.SchemaLoader
	repo      domain.RepoInfo
}

func NewValidateService(
	documents domain.DocumentLoader,
	schemas domain.SchemaLoader,
	repo domain.RepoInfo,
) *ValidateService {
	return &ValidateService{
		documents: documents,
		schemas:   schemas,
		repo:      repo,
	}
}

// Options control a single validation run.
type Options struct {
	// SchemaPath selects an external schema file. Empty means the
	// built-in DSWx-HLS schema.
	SchemaPath string
	// Strict rejects keys not declared in the schema.
	Strict bool
	// Logger, when non-nil, receives the finished report.
	Logger domain.JobLogger
}

// Validate checks the run configuration at configPath. A *domain.ParseError
// from the loader is propagated as-is with no partial report; schema
// deviations come back inside the report.
func (s *ValidateService) Validate(configPath string, opts Options) (*domain.Report, error) {
	// 1. Load the document
	doc, err := s.documents.Load(configPath)
	if err != nil {
		return nil, err
	}

	// 2. Resolve the schema
	schema := domain.DSWxHLSSchema()
	schemaName := "builtin:" + domain.ProductTypeDSWxHLS
	if opts.SchemaPath != "" {
		schema, err = s.schemas.Load(opts.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("loading schema: %w", err)
		}
		schemaName = opts.SchemaPath
	}

	// 3. Validate
	validator := domain.NewValidator(opts.Strict)
	report := validator.Validate(doc, schema)
	report.ConfigFile = configPath
	report.Schema = schemaName

	// 4. Git metadata is best effort; validation stands without it.
	if s.repo != nil {
		dir := filepath.Dir(configPath)
		if s.repo.IsGitRepo(dir) {
			if hash, hashErr := s.repo.CommitHash(dir); hashErr == nil {
				report.CommitHash = hash
			}
		}
	}

	// 5. Job log
	if opts.Logger != nil {
		if logErr := opts.Logger.LogReport(&report); logErr != nil {
			return nil, fmt.Errorf("writing job log: %w", logErr)
		}
	}

	return &report, nil
}
