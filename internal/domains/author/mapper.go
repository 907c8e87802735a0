package author

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToDTO converts a persisted author to its wire shape.
func (e AuthorEntity) ToDTO() AuthorDTO {
	return AuthorDTO{
		ID:        e.ID.Hex(),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Biography: e.Biography,
	}
}

// ToEntity builds the document to insert, with a fresh identifier.
func (d AuthorCreateDTO) ToEntity() AuthorEntity {
	return AuthorEntity{
		ID:        primitive.NewObjectID(),
		FirstName: deref(d.FirstName),
		LastName:  deref(d.LastName),
		Biography: deref(d.Biography),
	}
}

// ToEntity keeps only the supplied fields. Empty strings count as absent.
func (d AuthorUpdateDTO) ToEntity() AuthorUpdateEntity {
	return AuthorUpdateEntity{
		FirstName: present(d.FirstName),
		LastName:  present(d.LastName),
		Biography: present(d.Biography),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func present(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
