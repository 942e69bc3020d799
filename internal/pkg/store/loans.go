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

type LoanRepository struct {
	repo *MongoRepository[models.Loan]
}

func NewLoanRepository() *LoanRepository {
	collection := db.MDB.Database.Collection(consts.LoansCollection)
	mrepo := NewMongoRepository[models.Loan](collection)
	return &LoanRepository{repo: mrepo}
}

func (r *LoanRepository) CreateLoan(ctx context.Context, loan models.Loan) error {
	_, err := r.repo.Create(loan)
	if err != nil {
		logger.Error(ctx, "Loans : Error while inserting %v", err.Error())
		return fmt.Errorf("Loans : error while inserting %v", err.Error())
	}
	return nil
}

func (r *LoanRepository) LoanByFilter(filter interface{}) (*models.Loan, error) {
	result, err := r.repo.Read(filter)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// LoansByFilter returns loans ordered by origination date, oldest first.
func (r *LoanRepository) LoansByFilter(filter interface{}) ([]models.Loan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dateInitial", Value: 1}})
	cursor, err := r.repo.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.Loan
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
