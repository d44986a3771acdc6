package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/melodia/catalog-api/internal/core/domain"
)

const albumsCollection = "albums"

// AlbumRepository persists albums.
type AlbumRepository struct {
	coll *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) *AlbumRepository {
	return &AlbumRepository{coll: db.Collection(albumsCollection)}
}

type mongoAlbum struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Year     int                `bson:"year"`
	Songs    int                `bson:"songs"`
	ArtistID primitive.ObjectID `bson:"artist_id"`
}

func (ma *mongoAlbum) toDomain() *domain.Album {
	return &domain.Album{
		ID:       ma.ID.Hex(),
		Title:    ma.Title,
		Year:     ma.Year,
		Songs:    ma.Songs,
		ArtistID: ma.ArtistID.Hex(),
	}
}

func (r *AlbumRepository) Create(ctx context.Context, album *domain.Album) (*domain.Album, error) {
	aid, err := primitive.ObjectIDFromHex(album.ArtistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	doc := mongoAlbum{
		Title:    album.Title,
		Year:     album.Year,
		Songs:    album.Songs,
		ArtistID: aid,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert album: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AlbumRepository) FindAll(ctx context.Context) ([]domain.Album, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer cur.Close(ctx)

	var albums []domain.Album
	for cur.Next(ctx) {
		var ma mongoAlbum
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode album: %w", err)
		}
		albums = append(albums, *ma.toDomain())
	}
	return albums, cur.Err()
}
