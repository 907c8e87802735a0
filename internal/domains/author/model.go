package author

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the document collection holding authors.
const CollectionName = "authors"

// AuthorEntity is the persisted shape of an author.
type AuthorEntity struct {
	ID        primitive.ObjectID `bson:"_id"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Biography string             `bson:"biography"`
}

// AuthorUpdateEntity holds the fields merged by a partial update.
// Nil fields are omitted from the $set document and left unchanged.
type AuthorUpdateEntity struct {
	FirstName *string `bson:"firstName,omitempty"`
	LastName  *string `bson:"lastName,omitempty"`
	Biography *string `bson:"biography,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (e AuthorUpdateEntity) IsEmpty() bool {
	return e.FirstName == nil && e.LastName == nil && e.Biography == nil
}

// AuthorDTO is the wire shape of an author.
type AuthorDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Biography string `json:"biography"`
}

// AuthorCreateDTO - POST /authors
type AuthorCreateDTO struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Biography *string `json:"biography"`
}

// AuthorUpdateDTO - PATCH /authors/:id
// All fields optional; nil means "do not change this field".
type AuthorUpdateDTO struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Biography *string `json:"biography,omitempty"`
}

// AuthorDTOList - GET /authors
type AuthorDTOList struct {
	Authors []AuthorDTO `json:"authors"`
}

// AuthorIDParam is the :id path parameter.
type AuthorIDParam struct {
	ID string `json:"id" uri:"id"`
}
