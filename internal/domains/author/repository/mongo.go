package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/schema"
)

// mongoRepository implements author.Repository on the authors collection.
type mongoRepository struct {
	db *mongo.Database
}

// NewMongoRepository receives the database handle created at startup.
func NewMongoRepository(db *mongo.Database) author.Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) collection() *mongo.Collection {
	return r.db.Collection(author.CollectionName)
}

func (r *mongoRepository) FindAll(ctx context.Context) (*author.AuthorDTOList, error) {
	cursor, err := r.collection().Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find authors: %w", err)
	}

	defer cursor.Close(ctx)

	authors := make([]author.AuthorDTO, 0)
	fetched := 0
	for cursor.Next(ctx) {
		fetched++

		var entity author.AuthorEntity
		if err := cursor.Decode(&entity); err != nil {
			log.Error().
				Str("author_id", rawID(cursor.Current)).
				Err(err).
				Msg("Author document decode failed")
			continue
		}

		parsed := schema.SafeParse(entity.ToDTO())
		if !parsed.Success {
			log.Error().
				Str("author_id", entity.ID.Hex()).
				Str("error", parsed.Issues.Error()).
				Msg("AuthorDTO validation failed")
			continue
		}
		authors = append(authors, parsed.Data)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	log.Info().Int("count", fetched).Int("valid", len(authors)).Msg("Fetched authors")

	return &author.AuthorDTOList{Authors: authors}, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*author.AuthorDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Str("author_id", id).Msg("Author not found: malformed id")
		return nil, apperror.NotFound
	}

	raw, err := r.collection().FindOne(ctx, bson.M{"_id": oid}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		log.Error().Str("author_id", id).Msg("Author not found")
		return nil, apperror.NotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find author by id: %w", err)
	}

	return r.decode(raw)
}

func (r *mongoRepository) Create(ctx context.Context, dto author.AuthorCreateDTO) (*author.AuthorDTO, error) {
	entity := schema.SafeParse(dto.ToEntity())
	if !entity.Success {
		log.Error().Str("error", entity.Issues.Error()).Msg("AuthorEntity validation failed")
		return nil, apperror.Validation
	}

	_, err := r.collection().InsertOne(ctx, entity.Data)
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) || mongo.IsDuplicateKeyError(err) {
		log.Error().Err(err).Msg("Author not created")
		return nil, apperror.Conflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}

	log.Info().Str("author_id", entity.Data.ID.Hex()).Msg("Author created")

	return r.toDTO(entity.Data)
}

func (r *mongoRepository) Update(ctx context.Context, id string, dto author.AuthorUpdateDTO) (*author.AuthorDTO, error) {
	update := schema.SafeParse(dto.ToEntity())
	if !update.Success {
		log.Error().Str("author_id", id).Str("error", update.Issues.Error()).Msg("AuthorUpdateEntity validation failed")
		return nil, apperror.Validation
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Str("author_id", id).Msg("Author not found: malformed id")
		return nil, apperror.NotFound
	}

	// An empty $set is rejected by the server; nothing to change means
	// returning the current document.
	if update.Data.IsEmpty() {
		log.Info().Str("author_id", id).Msg("Author update has no fields, returning current document")
		return r.FindByID(ctx, id)
	}

	raw, err := r.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": update.Data},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		log.Error().Str("author_id", id).Msg("Author not found")
		return nil, apperror.NotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	log.Info().Str("author_id", id).Msg("Author updated")

	return r.decode(raw)
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Str("author_id", id).Msg("Author not found: malformed id")
		return apperror.NotFound
	}

	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if result.DeletedCount == 0 {
		log.Error().Str("author_id", id).Msg("Failed to delete author: not found")
		return apperror.NotFound
	}

	log.Info().Str("author_id", id).Msg("Author deleted")
	return nil
}

func (r *mongoRepository) toDTO(entity author.AuthorEntity) (*author.AuthorDTO, error) {
	parsed := schema.SafeParse(entity.ToDTO())
	if !parsed.Success {
		log.Error().
			Str("author_id", entity.ID.Hex()).
			Str("error", parsed.Issues.Error()).
			Msg("AuthorDTO validation failed")
		return nil, apperror.Validation
	}
	return &parsed.Data, nil
}

// decode maps a stored document that no longer fits AuthorEntity to
// VALIDATION, like any other corrupted record.
func (r *mongoRepository) decode(raw bson.Raw) (*author.AuthorDTO, error) {
	var entity author.AuthorEntity
	if err := bson.Unmarshal(raw, &entity); err != nil {
		log.Error().
			Str("author_id", rawID(raw)).
			Err(err).
			Msg("Author document decode failed")
		return nil, apperror.Validation
	}
	return r.toDTO(entity)
}

// rawID renders the _id of an undecodable document for logging.
func rawID(raw bson.Raw) string {
	v, err := raw.LookupErr("_id")
	if err != nil {
		return ""
	}
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	return v.String()
}
