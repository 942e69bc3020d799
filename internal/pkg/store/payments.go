package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/db"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentRepository struct {
	repo *MongoRepository[models.Payment]
}

func NewPaymentRepository() *PaymentRepository {
	collection := db.MDB.Database.Collection(consts.PaymentsCollection)
	mrepo := NewMongoRepository[models.Payment](collection)
	return &PaymentRepository{repo: mrepo}
}

func (r *PaymentRepository) AppendPayment(ctx context.Context, payment models.Payment) error {
	_, err := r.repo.Create(payment)
	if err != nil {
		logger.Error(ctx, "Payments : Error while inserting %v", err.Error())
		return fmt.Errorf("Payments : error while inserting %v", err.Error())
	}
	return nil
}

// PaymentsByFilter returns payments in the order they were recorded.
func (r *PaymentRepository) PaymentsByFilter(filter interface{}) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.repo.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.Payment
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
