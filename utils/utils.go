package utils

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetUUID() string {
	return uuid.New().String()
}

// URL-safe alphabet, no padding characters.
const tokenRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewToken creates an unguessable random string of length n from a
// cryptographically strong source. Used for guest access tokens.
func NewToken(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(tokenRunes)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand failure means the process cannot run safely
		}
		b[i] = tokenRunes[idx.Int64()]
	}
	return string(b)
}

// FindAndDecode runs a capped find against coll and decodes the results into a
// typed slice. Always returns a non-nil slice so lists encode as [] not null.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, limit int64) ([]T, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
