package services

import (
	"context"
	"strings"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/engine"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClientService struct {
	clientRepo ClientRepository
	validation *ValidationService
}

func NewClientService(clientRepo ClientRepository, validation *ValidationService) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		validation: validation,
	}
}

func (s *ClientService) CreateClient(ctx context.Context, request models.CreateClientRequest) (*models.CreateClientResponse, error) {
	missing := utils.MissingFields(map[string]string{
		"name":      request.Name,
		"surname":   request.Surname,
		"email":     request.Email,
		"telephone": request.Telephone,
		"cpf":       request.CPF,
	})
	if len(missing) > 0 {
		logger.Warn(ctx, "Client request missing fields: %v", missing)
		err := consts.ErrorMissingRequiredFields
		for _, field := range missing {
			err = err.WithField(field, "required")
		}
		return nil, err
	}

	cleanedCPF := utils.CleanCPF(request.CPF)
	if !utils.IsValidCPF(cleanedCPF) {
		logger.Warn(ctx, "Invalid CPF on client request")
		return nil, consts.ErrorMissingRequiredFields.WithField("cpf", "not a valid CPF")
	}

	count, err := s.clientRepo.CountClients(bson.M{"cpf": cleanedCPF})
	if err != nil {
		logger.Error(ctx, "Error checking CPF uniqueness: %v", err)
		return nil, err
	}
	if count > 0 {
		return nil, consts.ErrorDuplicateCPF
	}

	client := models.Client{
		ClientId:  primitive.NewObjectID(),
		Name:      strings.TrimSpace(request.Name),
		Surname:   strings.TrimSpace(request.Surname),
		Email:     strings.TrimSpace(request.Email),
		Telephone: strings.TrimSpace(request.Telephone),
		CPF:       cleanedCPF,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.clientRepo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Client %s registered", client.ClientId.Hex())
	return &models.CreateClientResponse{ClientId: client.ClientId.Hex()}, nil
}

// GetClient returns the client attributes plus the derived indebtedness
// flag. The flag is never stored, it is recomputed from the ledger on
// every read.
func (s *ClientService) GetClient(ctx context.Context, clientId string) (*models.ClientResponse, error) {
	objectId, err := primitive.ObjectIDFromHex(clientId)
	if err != nil {
		return nil, consts.ErrorClientNotFound
	}

	client, err := s.clientRepo.ClientByFilter(bson.M{"_id": objectId})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorClientNotFound
		}
		logger.Error(ctx, "Error fetching client %s: %v", clientId, err)
		return nil, err
	}

	history, err := s.validation.ClientHistory(ctx, objectId)
	if err != nil {
		return nil, err
	}
	assessment := engine.Assess(history)

	return &models.ClientResponse{
		ClientId:   client.ClientId.Hex(),
		Name:       client.Name,
		Surname:    client.Surname,
		Email:      client.Email,
		Telephone:  client.Telephone,
		CPF:        client.CPF,
		IsIndebted: !assessment.Eligible,
	}, nil
}
