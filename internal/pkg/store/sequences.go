package store

import (
	"context"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/db"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sequenceDocument struct {
	Name  string `bson:"_id"`
	Value int64  `bson:"value"`
}

type SequenceRepository struct {
	repo *MongoRepository[sequenceDocument]
}

func NewSequenceRepository() *SequenceRepository {
	collection := db.MDB.Database.Collection(consts.SequencesCollection)
	mrepo := NewMongoRepository[sequenceDocument](collection)
	return &SequenceRepository{repo: mrepo}
}

// NextSequence reserves and returns the next value of the named counter.
// The reservation is a single findOneAndUpdate with $inc, so concurrent
// callers never observe the same value.
func (r *SequenceRepository) NextSequence(ctx context.Context, name string) (int64, error) {
	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": name}
	update := bson.M{"$inc": bson.M{"value": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc sequenceDocument
	err := r.repo.collection.FindOneAndUpdate(opCtx, filter, update, opts).Decode(&doc)
	if err != nil {
		logger.Error(ctx, "Sequences : Error while reserving %v : %v", name, err.Error())
		return 0, err
	}
	return doc.Value, nil
}
