package commands

import (
	"context"
	"fmt"

	"orbdyn/internal/application"
	"orbdyn/internal/ports"
)

// RestoreResult contains the result of a restore operation
type RestoreResult struct {
	Restored []string
	Message  string
}

// RestoreCommand brings resources back from the recycle bin
type RestoreCommand struct {
	repo ports.ResourceRepository
	IDs  []string
}

// NewRestoreCommand creates a new RestoreCommand
func NewRestoreCommand(repo ports.ResourceRepository, ids ...string) *RestoreCommand {
	return &RestoreCommand{
		repo: repo,
		IDs:  ids,
	}
}

// Validate checks if the restore operation is valid
func (c *RestoreCommand) Validate() error {
	return application.ValidateIDs("ids", c.IDs)
}

// Execute runs the restore command. It stops at the first failure; ids
// restored before it stay restored.
func (c *RestoreCommand) Execute(ctx context.Context) (*RestoreResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &RestoreResult{}
	for _, id := range c.IDs {
		if err := c.repo.Restore(ctx, id); err != nil {
			return result, fmt.Errorf("failed to restore %s: %w", id, err)
		}
		result.Restored = append(result.Restored, id)
	}

	if len(result.Restored) == 1 {
		result.Message = fmt.Sprintf("Restored %s", result.Restored[0])
	} else {
		result.Message = fmt.Sprintf("Restored %d resources", len(result.Restored))
	}
	return result, nil
}
