package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orbdyn/internal/application"
	"orbdyn/internal/codec"
	"orbdyn/internal/domain"
	"orbdyn/internal/logger"
	"orbdyn/internal/ports"
)

// ExportResult contains a rendered resource and a suggested file name
type ExportResult struct {
	Resource domain.Resource
	Content  string
	FileName string
	Message  string
}

// ExportCommand renders one resource in an exchange format
type ExportCommand struct {
	repo   ports.ResourceRepository
	ID     string
	Format codec.Format
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(repo ports.ResourceRepository, id string, format codec.Format) *ExportCommand {
	return &ExportCommand{
		repo:   repo,
		ID:     id,
		Format: format,
	}
}

// Validate checks if the export operation is valid
func (c *ExportCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}

	if _, err := codec.ParseFormat(string(c.Format)); err != nil {
		return &application.ValidationError{Field: "format", Message: err.Error()}
	}

	return nil
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	res, err := c.repo.Get(c.ID)
	if err != nil {
		return nil, err
	}

	content, err := codec.Export(res, c.Format)
	if err != nil {
		return nil, err
	}

	name := codec.FileName(res, c.Format)
	return &ExportResult{
		Resource: res,
		Content:  content,
		FileName: name,
		Message:  fmt.Sprintf("Exported %s as %s", res.Title, name),
	}, nil
}

// ImportResult contains what an import added and what it skipped
type ImportResult struct {
	Accepted   []domain.Resource
	Duplicates []string
	Message    string
}

// ImportCommand parses an import payload and merges the accepted resources
type ImportCommand struct {
	repo     ports.ResourceRepository
	importer *codec.Importer
	log      logger.Logger
	Raw      string
	FileName string
	Format   codec.Format
}

// NewImportCommand creates a new ImportCommand. An empty format is inferred
// from fileName.
func NewImportCommand(repo ports.ResourceRepository, importer *codec.Importer, log logger.Logger, raw, fileName string, format codec.Format) *ImportCommand {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportCommand{
		repo:     repo,
		importer: importer,
		log:      log,
		Raw:      raw,
		FileName: fileName,
		Format:   format,
	}
}

// Validate checks if the import operation is valid
func (c *ImportCommand) Validate() error {
	if c.Format == "" {
		f, err := codec.FormatFromPath(c.FileName)
		if err != nil {
			return &application.ValidationError{Field: "format", Message: err.Error()}
		}
		c.Format = f
	}

	if _, err := codec.ParseFormat(string(c.Format)); err != nil {
		return &application.ValidationError{Field: "format", Message: err.Error()}
	}

	return nil
}

// Execute runs the import command. A duplicate Markdown or PDF document is
// reported as a *application.DuplicateTitleError together with the result.
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing := domain.NewTitleIndex(c.repo.List())
	parsed, err := c.importer.Import(c.Raw, c.FileName, c.Format, existing)
	if err != nil {
		var parseErr *application.ImportParseError
		if errors.As(err, &parseErr) {
			c.log.Error("import failed", logger.String("file", c.FileName), logger.Error(err))
		}
		if parsed != nil && errors.Is(err, application.ErrDuplicateTitle) {
			return &ImportResult{
				Duplicates: parsed.Duplicates,
				Message:    duplicatesMessage(0, parsed.Duplicates),
			}, err
		}
		return nil, err
	}

	accepted, skipped, err := c.repo.Merge(ctx, parsed.Accepted)
	if err != nil {
		return nil, fmt.Errorf("failed to save imported resources: %w", err)
	}

	duplicates := append(parsed.Duplicates, skipped...)
	if len(duplicates) > 0 {
		c.log.Warn("import skipped duplicate titles", logger.Strings("titles", duplicates))
	}

	return &ImportResult{
		Accepted:   accepted,
		Duplicates: duplicates,
		Message:    duplicatesMessage(len(accepted), duplicates),
	}, nil
}

func duplicatesMessage(accepted int, duplicates []string) string {
	msg := fmt.Sprintf("Imported %d resources", accepted)
	if len(duplicates) > 0 {
		msg += fmt.Sprintf(", skipped %d duplicates: %s", len(duplicates), strings.Join(duplicates, ", "))
	}
	return msg
}
