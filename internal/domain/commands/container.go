package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewListCommand,
		NewExistsCommand,
		NewShowCommand,
		NewPutCommand,
		NewRemoveCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *ListCommand) List { return impl },
		func(impl *ExistsCommand) Exists { return impl },
		func(impl *ShowCommand) Show { return impl },
		func(impl *PutCommand) Put { return impl },
		func(impl *RemoveCommand) Remove { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
