package controllers

import (
	"github.com/rios0rios0/repofiles/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewListController,
		NewExistsController,
		NewShowController,
		NewPutController,
		NewRemoveController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	listController *ListController,
	existsController *ExistsController,
	showController *ShowController,
	putController *PutController,
	removeController *RemoveController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
		existsController,
		showController,
		putController,
		removeController,
	}
}
