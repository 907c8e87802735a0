package post

import "context"

// Repository owns document-store access for posts. Reads join each post
// with its author.
//
// Expected failures are returned as apperror.Key values (NotFound,
// Validation, Conflict). Any other error comes from the driver.
type Repository interface {
	FindAll(ctx context.Context) (*PostDTOList, error)
	FindByID(ctx context.Context, id string) (*PostDTO, error)
	Create(ctx context.Context, dto PostCreateDTO) (*PostDTO, error)
	// Update merges the supplied fields, refreshes updatedAt and returns the joined post.
	Update(ctx context.Context, id string, dto PostUpdateDTO) (*PostDTO, error)
	Delete(ctx context.Context, id string) error
}
