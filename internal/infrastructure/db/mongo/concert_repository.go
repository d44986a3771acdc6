package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/melodia/catalog-api/internal/core/domain"
)

const concertsCollection = "concerts"

// ConcertRepository persists concerts.
type ConcertRepository struct {
	coll *mongo.Collection
}

func NewConcertRepository(db *mongo.Database) *ConcertRepository {
	return &ConcertRepository{coll: db.Collection(concertsCollection)}
}

type mongoConcert struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Location string             `bson:"location"`
	Date     time.Time          `bson:"date"`
	Capacity int                `bson:"capacity"`
	ArtistID primitive.ObjectID `bson:"artist_id"`
}

func (mc *mongoConcert) toDomain() *domain.Concert {
	return &domain.Concert{
		ID:       mc.ID.Hex(),
		Location: mc.Location,
		Date:     mc.Date.UTC(),
		Capacity: mc.Capacity,
		ArtistID: mc.ArtistID.Hex(),
	}
}

func (r *ConcertRepository) Create(ctx context.Context, concert *domain.Concert) (*domain.Concert, error) {
	aid, err := primitive.ObjectIDFromHex(concert.ArtistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	doc := mongoConcert{
		Location: concert.Location,
		Date:     concert.Date.UTC(),
		Capacity: concert.Capacity,
		ArtistID: aid,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert concert: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ConcertRepository) FindAll(ctx context.Context) ([]domain.Concert, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}
	defer cur.Close(ctx)

	var concerts []domain.Concert
	for cur.Next(ctx) {
		var mc mongoConcert
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode concert: %w", err)
		}
		concerts = append(concerts, *mc.toDomain())
	}
	return concerts, cur.Err()
}
