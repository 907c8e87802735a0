package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/clock"
	"blog-backend/internal/shared/schema"
)

// mongoRepository implements post.Repository on the posts collection.
type mongoRepository struct {
	db    *mongo.Database
	clock clock.Clock
}

// NewMongoRepository receives the database handle created at startup and
// the clock stamping createdAt/updatedAt.
func NewMongoRepository(db *mongo.Database, clk clock.Clock) post.Repository {
	return &mongoRepository{db: db, clock: clk}
}

func (r *mongoRepository) collection() *mongo.Collection {
	return r.db.Collection(post.CollectionName)
}

// joinAuthor builds the aggregation embedding the referenced author as
// "author". A nil match selects every post.
func joinAuthor(match bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: author.CollectionName},
			{Key: "localField", Value: "authorId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "author", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$author", 0}}}},
		}}},
	)
}

func (r *mongoRepository) FindAll(ctx context.Context) (*post.PostDTOList, error) {
	cursor, err := r.collection().Aggregate(ctx, joinAuthor(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate posts: %w", err)
	}

	defer cursor.Close(ctx)

	posts := make([]post.PostDTO, 0)
	fetched := 0
	for cursor.Next(ctx) {
		fetched++

		var entity post.PostEntityAggregated
		if err := cursor.Decode(&entity); err != nil {
			log.Error().
				Str("post_id", rawID(cursor.Current)).
				Err(err).
				Msg("Post document decode failed")
			continue
		}

		parsed := schema.SafeParse(entity.ToDTO())
		if !parsed.Success {
			log.Error().
				Str("post_id", entity.ID.Hex()).
				Str("error", parsed.Issues.Error()).
				Msg("PostDTO validation failed")
			continue
		}
		posts = append(posts, parsed.Data)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	log.Info().Int("count", fetched).Int("valid", len(posts)).Msg("Fetched posts")

	return &post.PostDTOList{Posts: posts}, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*post.PostDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Str("post_id", id).Msg("Post not found: malformed id")
		return nil, apperror.NotFound
	}
	return r.findOne(ctx, oid)
}

// findOne reads a single joined post.
func (r *mongoRepository) findOne(ctx context.Context, oid primitive.ObjectID) (*post.PostDTO, error) {
	cursor, err := r.collection().Aggregate(ctx, joinAuthor(bson.D{{Key: "_id", Value: oid}}))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate post: %w", err)
	}

	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("failed to read post: %w", err)
		}
		log.Error().Str("post_id", oid.Hex()).Msg("Post not found")
		return nil, apperror.NotFound
	}

	var entity post.PostEntityAggregated
	if err := cursor.Decode(&entity); err != nil {
		log.Error().Str("post_id", oid.Hex()).Err(err).Msg("Post document decode failed")
		return nil, apperror.Validation
	}

	parsed := schema.SafeParse(entity.ToDTO())
	if !parsed.Success {
		log.Error().
			Str("post_id", oid.Hex()).
			Str("error", parsed.Issues.Error()).
			Msg("PostDTO validation failed")
		return nil, apperror.Validation
	}
	return &parsed.Data, nil
}

func (r *mongoRepository) Create(ctx context.Context, dto post.PostCreateDTO) (*post.PostDTO, error) {
	entity := schema.SafeParse(dto.ToEntity(r.clock.Now()))
	if !entity.Success {
		log.Error().Str("error", entity.Issues.Error()).Msg("PostEntity validation failed")
		return nil, apperror.Validation
	}

	_, err := r.collection().InsertOne(ctx, entity.Data)
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) || mongo.IsDuplicateKeyError(err) {
		log.Error().Err(err).Msg("Post not created")
		return nil, apperror.Conflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	log.Info().Str("post_id", entity.Data.ID.Hex()).Msg("Post created")

	return r.findOne(ctx, entity.Data.ID)
}

func (r *mongoRepository) Update(ctx context.Context, id string, dto post.PostUpdateDTO) (*post.PostDTO, error) {
	update := schema.SafeParse(dto.ToEntity(r.clock.Now()))
	if !update.Success {
		log.Error().Str("post_id", id).Str("error", update.Issues.Error()).Msg("PostUpdateEntity validation failed")
		return nil, apperror.Validation
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Str("post_id", id).Msg("Post not found: malformed id")
		return nil, apperror.NotFound
	}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update.Data})
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if result.MatchedCount == 0 {
		log.Error().Str("post_id", id).Msg("Failed to update post: not found")
		return nil, apperror.NotFound
	}

	log.Info().Str("post_id", id).Msg("Post updated")

	return r.findOne(ctx, oid)
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Error().Str("post_id", id).Msg("Post not found: malformed id")
		return apperror.NotFound
	}

	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.DeletedCount == 0 {
		log.Error().Str("post_id", id).Msg("Failed to delete post: not found")
		return apperror.NotFound
	}

	log.Info().Str("post_id", id).Msg("Post deleted")
	return nil
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
