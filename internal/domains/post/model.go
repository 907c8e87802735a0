package post

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/author"
)

// CollectionName is the document collection holding posts.
const CollectionName = "posts"

// PostEntity is the persisted shape of a post. AuthorID references an
// author document.
type PostEntity struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Content     string             `bson:"content"`
	AuthorID    primitive.ObjectID `bson:"authorId"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// PostEntityAggregated is a post joined with its author document.
// Author is nil when the referenced author does not exist.
type PostEntityAggregated struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Content     string               `bson:"content"`
	Author      *author.AuthorEntity `bson:"author,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// PostUpdateEntity holds the fields merged by a partial update.
// UpdatedAt is always written.
type PostUpdateEntity struct {
	Title       *string             `bson:"title,omitempty"`
	Description *string             `bson:"description,omitempty"`
	Content     *string             `bson:"content,omitempty"`
	AuthorID    *primitive.ObjectID `bson:"authorId,omitempty"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

// PostDTO is the wire shape of a post, with its author embedded.
type PostDTO struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	Author      author.AuthorDTO `json:"author"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// PostCreateDTO - POST /posts
type PostCreateDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	AuthorID    *string `json:"authorId"`
}

// PostUpdateDTO - PATCH /posts/:id
type PostUpdateDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	AuthorID    *string `json:"authorId,omitempty"`
}

// PostDTOList - GET /posts
type PostDTOList struct {
	Posts []PostDTO `json:"posts"`
}

// PostIDParam is the :id path parameter.
type PostIDParam struct {
	ID string `json:"id" uri:"id"`
}
