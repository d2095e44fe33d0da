package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reelspro/reels-api/internal/core/domain"
)

const videosCollection = "videos"

// VideoRepository persists catalog records in the videos collection.
type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{coll: db.Collection(videosCollection)}
}

type videoDoc struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty"`
	Title          string                `bson:"title"`
	Description    string                `bson:"description"`
	VideoURL       string                `bson:"video_url"`
	ThumbnailURL   string                `bson:"thumbnail_url"`
	Controls       bool                  `bson:"controls"`
	Transformation domain.Transformation `bson:"transformation"`
	CreatedAt      time.Time             `bson:"created_at"`
	UpdatedAt      time.Time             `bson:"updated_at"`
}

func (d videoDoc) toDomain() *domain.Video {
	return &domain.Video{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		Description:    d.Description,
		VideoURL:       d.VideoURL,
		ThumbnailURL:   d.ThumbnailURL,
		Controls:       d.Controls,
		Transformation: d.Transformation,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// Insert persists a new video document and returns the stored record with
// its generated id.
func (r *VideoRepository) Insert(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := videoDoc{
		Title:          video.Title,
		Description:    video.Description,
		VideoURL:       video.VideoURL,
		ThumbnailURL:   video.ThumbnailURL,
		Controls:       video.Controls,
		Transformation: video.Transformation,
		CreatedAt:      video.CreatedAt,
		UpdatedAt:      video.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}

	created := *video
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// List returns every video ordered by creation time, newest first.
func (r *VideoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer cur.Close(ctx)

	videos := []*domain.Video{}
	for cur.Next(ctx) {
		var doc videoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode video: %w", err)
		}
		videos = append(videos, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

// EnsureIndexes creates the created_at index the listing sort relies on.
func (r *VideoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
