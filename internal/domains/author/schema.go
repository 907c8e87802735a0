package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared/schema"
)

// Field constraints shared by every author schema.
var (
	FirstNameField = schema.Text{Label: "First name", Min: 1, Max: 100}
	LastNameField  = schema.Text{Label: "Last name", Min: 1, Max: 100}
	BiographyField = schema.Text{Label: "Biography", Min: 1, Max: 500}
)

const (
	InvalidIDMessage = "Invalid author ID"
	missingIDMessage = "Author ID is required"
)

func (e AuthorEntity) Validate() error {
	return schema.ValidateStruct(&e,
		validation.Field(&e.ID, schema.ObjectIDSet(missingIDMessage)),
		validation.Field(&e.FirstName, FirstNameField.Rules()...),
		validation.Field(&e.LastName, LastNameField.Rules()...),
		validation.Field(&e.Biography, BiographyField.Rules()...),
	)
}

func (e AuthorUpdateEntity) Validate() error {
	return schema.ValidateStruct(&e,
		validation.Field(&e.FirstName, FirstNameField.OptionalRules()...),
		validation.Field(&e.LastName, LastNameField.OptionalRules()...),
		validation.Field(&e.Biography, BiographyField.OptionalRules()...),
	)
}

func (d AuthorDTO) Validate() error {
	return schema.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required.Error(missingIDMessage), schema.ObjectID(InvalidIDMessage)),
		validation.Field(&d.FirstName, FirstNameField.Rules()...),
		validation.Field(&d.LastName, LastNameField.Rules()...),
		validation.Field(&d.Biography, BiographyField.Rules()...),
	)
}

func (d AuthorCreateDTO) Validate() error {
	return schema.ValidateStruct(&d,
		validation.Field(&d.FirstName, FirstNameField.Rules()...),
		validation.Field(&d.LastName, LastNameField.Rules()...),
		validation.Field(&d.Biography, BiographyField.Rules()...),
	)
}

func (d AuthorUpdateDTO) Validate() error {
	return schema.ValidateStruct(&d,
		validation.Field(&d.FirstName, FirstNameField.OptionalRules()...),
		validation.Field(&d.LastName, LastNameField.OptionalRules()...),
		validation.Field(&d.Biography, BiographyField.OptionalRules()...),
	)
}

func (p AuthorIDParam) Validate() error {
	return schema.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required.Error(InvalidIDMessage), schema.ObjectID(InvalidIDMessage)),
	)
}
