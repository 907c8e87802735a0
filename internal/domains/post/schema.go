package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared/schema"
)

var (
	TitleField       = schema.Text{Label: "Title", Min: 1, Max: 100}
	DescriptionField = schema.Text{Label: "Description", Min: 1, Max: 500}
	ContentField     = schema.Text{Label: "Content", Min: 1, Max: 5000}
)

const (
	InvalidIDMessage       = "Invalid post ID"
	InvalidAuthorIDMessage = "Invalid author ID"

	missingIDMessage        = "Post ID is required"
	missingCreatedAtMessage = "Created at is required"
	missingUpdatedAtMessage = "Updated at is required"
)

func (e PostEntity) Validate() error {
	return schema.ValidateStruct(&e,
		validation.Field(&e.ID, schema.ObjectIDSet(missingIDMessage)),
		validation.Field(&e.Title, TitleField.Rules()...),
		validation.Field(&e.Description, DescriptionField.Rules()...),
		validation.Field(&e.Content, ContentField.Rules()...),
		validation.Field(&e.AuthorID, schema.ObjectIDSet(InvalidAuthorIDMessage)),
		validation.Field(&e.CreatedAt, validation.Required.Error(missingCreatedAtMessage)),
		validation.Field(&e.UpdatedAt, validation.Required.Error(missingUpdatedAtMessage)),
	)
}

func (e PostUpdateEntity) Validate() error {
	return schema.ValidateStruct(&e,
		validation.Field(&e.Title, TitleField.OptionalRules()...),
		validation.Field(&e.Description, DescriptionField.OptionalRules()...),
		validation.Field(&e.Content, ContentField.OptionalRules()...),
		validation.Field(&e.AuthorID, validation.When(e.AuthorID != nil, schema.ObjectIDSet(InvalidAuthorIDMessage))),
		validation.Field(&e.UpdatedAt, validation.Required.Error(missingUpdatedAtMessage)),
	)
}

func (d PostDTO) Validate() error {
	return schema.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required.Error(missingIDMessage), schema.ObjectID(InvalidIDMessage)),
		validation.Field(&d.Title, TitleField.Rules()...),
		validation.Field(&d.Description, DescriptionField.Rules()...),
		validation.Field(&d.Content, ContentField.Rules()...),
		validation.Field(&d.Author),
	)
}

func (d PostCreateDTO) Validate() error {
	return schema.ValidateStruct(&d,
		validation.Field(&d.Title, TitleField.Rules()...),
		validation.Field(&d.Description, DescriptionField.Rules()...),
		validation.Field(&d.Content, ContentField.Rules()...),
		validation.Field(&d.AuthorID,
			validation.NotNil.Error(InvalidAuthorIDMessage),
			validation.Required.Error(InvalidAuthorIDMessage),
			schema.ObjectID(InvalidAuthorIDMessage),
		),
	)
}

func (d PostUpdateDTO) Validate() error {
	return schema.ValidateStruct(&d,
		validation.Field(&d.Title, TitleField.OptionalRules()...),
		validation.Field(&d.Description, DescriptionField.OptionalRules()...),
		validation.Field(&d.Content, ContentField.OptionalRules()...),
		validation.Field(&d.AuthorID, schema.ObjectID(InvalidAuthorIDMessage)),
	)
}

func (p PostIDParam) Validate() error {
	return schema.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required.Error(InvalidIDMessage), schema.ObjectID(InvalidIDMessage)),
	)
}
