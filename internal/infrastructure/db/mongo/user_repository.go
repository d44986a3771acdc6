package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/melodia/catalog-api/internal/core/domain"
	"github.com/melodia/catalog-api/internal/core/ports"
)

const usersCollection = "users"

// UserRepository persists accounts in the users collection. Favorite
// edges live on the user document as an array of artist ids, so every
// favorites mutation is one atomic document update and deleting a user
// deletes its edges with it.
type UserRepository struct {
	coll    *mongo.Collection
	artists *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		coll:    db.Collection(usersCollection),
		artists: db.Collection(artistsCollection),
	}
}

type mongoUser struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	PasswordHash string               `bson:"password_hash"`
	Role         string               `bson:"role"`
	Favorites    []primitive.ObjectID `bson:"favorites,omitempty"`
	CreatedAt    int64                `bson:"created_at"`
	UpdatedAt    int64                `bson:"updated_at"`
}

// EnsureIndexes creates the unique username index. Registration relies
// on it to surface duplicates as a conflict instead of pre-checking.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return r.toDomain(ctx, &doc, false)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return r.toDomain(ctx, &mu, false)
}

func (r *UserRepository) FindByID(ctx context.Context, id string, withFavorites bool) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return r.toDomain(ctx, &mu, withFavorites)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		u, err := r.toDomain(ctx, &mu, false)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, cur.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.Username != "" {
		set["username"] = update.Username
	}
	if update.PasswordHash != "" {
		set["password_hash"] = update.PasswordHash
	}

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return r.toDomain(ctx, &mu, false)
}

func (r *UserRepository) Delete(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return r.toDomain(ctx, &mu, false)
}

// AddFavorite appends the artist id with $addToSet, so re-adding an
// existing edge leaves exactly one copy.
func (r *UserRepository) AddFavorite(ctx context.Context, userID, artistID string) (*domain.User, error) {
	return r.updateFavorites(ctx, userID, artistID, "$addToSet")
}

// RemoveFavorite drops the artist id with $pull; pulling an absent id
// is a no-op at the document level.
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, artistID string) (*domain.User, error) {
	return r.updateFavorites(ctx, userID, artistID, "$pull")
}

func (r *UserRepository) updateFavorites(ctx context.Context, userID, artistID, op string) (*domain.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	aid, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": uid},
		bson.M{
			op:     bson.M{"favorites": aid},
			"$set": bson.M{"updated_at": time.Now().UTC().Unix()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update favorites: %w", err)
	}
	return r.toDomain(ctx, &mu, true)
}

func (r *UserRepository) toDomain(ctx context.Context, mu *mongoUser, withFavorites bool) (*domain.User, error) {
	user := &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		Role:         mu.Role,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}

	if withFavorites && len(mu.Favorites) > 0 {
		favorites, err := r.loadFavorites(ctx, mu.Favorites)
		if err != nil {
			return nil, err
		}
		user.Favorites = favorites
	}
	return user, nil
}

func (r *UserRepository) loadFavorites(ctx context.Context, ids []primitive.ObjectID) ([]domain.Artist, error) {
	cur, err := r.artists.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	defer cur.Close(ctx)

	var favorites []domain.Artist
	for cur.Next(ctx) {
		var ma mongoArtist
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		favorites = append(favorites, *ma.toDomain())
	}
	return favorites, cur.Err()
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
