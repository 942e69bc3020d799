package store

import (
	"context"
	"fmt"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/db"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
)

type ClientRepository struct {
	repo *MongoRepository[models.Client]
}

func NewClientRepository() *ClientRepository {
	collection := db.MDB.Database.Collection(consts.ClientsCollection)
	mrepo := NewMongoRepository[models.Client](collection)
	return &ClientRepository{repo: mrepo}
}

func (r *ClientRepository) CreateClient(ctx context.Context, client models.Client) error {
	_, err := r.repo.Create(client)
	if err != nil {
		logger.Error(ctx, "Clients : Error while inserting %v", err.Error())
		return fmt.Errorf("Clients : error while inserting %v", err.Error())
	}
	return nil
}

func (r *ClientRepository) ClientByFilter(filter interface{}) (*models.Client, error) {
	result, err := r.repo.Read(filter)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ClientRepository) CountClients(filter interface{}) (int64, error) {
	return r.repo.CountDocuments(filter)
}
