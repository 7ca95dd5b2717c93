// internal/store/mongo.go
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// mongoCollection adapts *mongo.Collection to the store's collection seam.
type mongoCollection struct {
	coll *mongo.Collection
}

func (m *mongoCollection) insert(ctx context.Context, doc applicationDoc) (bson.ObjectID, error) {
	result, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, err
	}
	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

func (m *mongoCollection) findAll(ctx context.Context) ([]applicationDoc, error) {
	cursor, err := m.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []applicationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *mongoCollection) updateStatus(ctx context.Context, id bson.ObjectID, status string) (int64, error) {
	result, err := m.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
