package post

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/author"
)

// ToDTO converts a joined post to its wire shape. A missing author maps to
// the zero AuthorDTO, which fails DTO validation.
func (e PostEntityAggregated) ToDTO() PostDTO {
	var a author.AuthorDTO
	if e.Author != nil {
		a = e.Author.ToDTO()
	}

	return PostDTO{
		ID:          e.ID.Hex(),
		Title:       e.Title,
		Description: e.Description,
		Content:     e.Content,
		Author:      a,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEntity builds the document to insert with a fresh identifier and both
// timestamps set to now. An unparsable author id maps to the zero ObjectID.
func (d PostCreateDTO) ToEntity(now time.Time) PostEntity {
	return PostEntity{
		ID:          primitive.NewObjectID(),
		Title:       deref(d.Title),
		Description: deref(d.Description),
		Content:     deref(d.Content),
		AuthorID:    objectID(deref(d.AuthorID)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ToEntity keeps only the supplied fields and always refreshes UpdatedAt.
func (d PostUpdateDTO) ToEntity(now time.Time) PostUpdateEntity {
	update := PostUpdateEntity{
		Title:       present(d.Title),
		Description: present(d.Description),
		Content:     present(d.Content),
		UpdatedAt:   now,
	}
	if id := present(d.AuthorID); id != nil {
		oid := objectID(*id)
		update.AuthorID = &oid
	}
	return update
}

func objectID(hex string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
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
