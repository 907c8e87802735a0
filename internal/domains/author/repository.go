package author

import (
	"context"
)

// Repository owns document-store access for authors.
//
// Expected failures are returned as apperror.Key values:
//   - apperror.NotFound when no document matches the id
//   - apperror.Validation when a mapped value fails its schema
//   - apperror.Conflict when an insert is not acknowledged
//
// Any other error comes from the driver and is unexpected.
type Repository interface {
	// FindAll returns every author that maps to a valid DTO.
	// Documents failing validation are dropped. An empty list is not an error.
	FindAll(ctx context.Context) (*AuthorDTOList, error)

	FindByID(ctx context.Context, id string) (*AuthorDTO, error)

	// Create inserts a new author and returns it with its assigned id.
	Create(ctx context.Context, dto AuthorCreateDTO) (*AuthorDTO, error)

	// Update merges the supplied fields and returns the resulting author.
	Update(ctx context.Context, id string, dto AuthorUpdateDTO) (*AuthorDTO, error)

	// Delete removes the author. It does not touch posts referencing it.
	Delete(ctx context.Context, id string) error
}
