package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/melodia/catalog-api/internal/core/domain"
)

const artistsCollection = "artists"

// ArtistRepository persists artists.
type ArtistRepository struct {
	coll *mongo.Collection
}

func NewArtistRepository(db *mongo.Database) *ArtistRepository {
	return &ArtistRepository{coll: db.Collection(artistsCollection)}
}

type mongoArtist struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Genre   string             `bson:"genre"`
	Age     int                `bson:"age"`
	Country string             `bson:"country"`
	URL     string             `bson:"url"`
}

func (ma *mongoArtist) toDomain() *domain.Artist {
	return &domain.Artist{
		ID:      ma.ID.Hex(),
		Name:    ma.Name,
		Genre:   ma.Genre,
		Age:     ma.Age,
		Country: ma.Country,
		URL:     ma.URL,
	}
}

func (r *ArtistRepository) Create(ctx context.Context, artist *domain.Artist) (*domain.Artist, error) {
	doc := mongoArtist{
		Name:    artist.Name,
		Genre:   artist.Genre,
		Age:     artist.Age,
		Country: artist.Country,
		URL:     artist.URL,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert artist: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ArtistRepository) FindByID(ctx context.Context, id string) (*domain.Artist, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	var ma mongoArtist
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("find artist: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *ArtistRepository) FindAll(ctx context.Context) ([]domain.Artist, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer cur.Close(ctx)

	var artists []domain.Artist
	for cur.Next(ctx) {
		var ma mongoArtist
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode artist: %w", err)
		}
		artists = append(artists, *ma.toDomain())
	}
	return artists, cur.Err()
}
