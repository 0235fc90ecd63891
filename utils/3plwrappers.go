package utils

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindAndDecode runs a Find and decodes the cursor into a typed slice.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// ParseSort maps a ?sort= value to a mongo sort document, falling back to def.
func ParseSort(value string, def bson.D, allowed map[string]bson.D) bson.D {
	if value == "" {
		return def
	}
	if allowed != nil {
		if d, ok := allowed[value]; ok {
			return d
		}
		return def
	}
	switch value {
	case "price_asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price", Value: -1}}
	case "newest":
		return bson.D{{Key: "createdAt", Value: -1}}
	case "oldest":
		return bson.D{{Key: "createdAt", Value: 1}}
	default:
		return def
	}
}
