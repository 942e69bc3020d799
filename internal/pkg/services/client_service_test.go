package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const validCPF = "529.982.247-25"

func newClientService(clientRepo *MockClientRepository, loanRepo *MockLoanRepository, paymentRepo *MockPaymentRepository) *ClientService {
	return NewClientService(clientRepo, NewValidationService(loanRepo, paymentRepo))
}

func TestCreateClient(t *testing.T) {
	clientRepo := new(MockClientRepository)
	service := newClientService(clientRepo, new(MockLoanRepository), new(MockPaymentRepository))

	clientRepo.On("CountClients", bson.M{"cpf": "52998224725"}).Return(int64(0), nil)
	clientRepo.On("CreateClient", mock.Anything, mock.MatchedBy(func(c models.Client) bool {
		return c.Name == "Felicity" && c.CPF == "52998224725" && !c.ClientId.IsZero()
	})).Return(nil)

	response, err := service.CreateClient(context.Background(), models.CreateClientRequest{
		Name:      "Felicity",
		Surname:   "Jones",
		Email:     "felicity@gmail.com",
		Telephone: "11984345678",
		CPF:       validCPF,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.ClientId)
	clientRepo.AssertExpectations(t)
}

func TestCreateClientDuplicateCPF(t *testing.T) {
	clientRepo := new(MockClientRepository)
	service := newClientService(clientRepo, new(MockLoanRepository), new(MockPaymentRepository))

	clientRepo.On("CountClients", bson.M{"cpf": "52998224725"}).Return(int64(1), nil)

	_, err := service.CreateClient(context.Background(), models.CreateClientRequest{
		Name:      "Felicity",
		Surname:   "Jones",
		Email:     "felicity@gmail.com",
		Telephone: "11984345678",
		CPF:       validCPF,
	})

	assert.ErrorIs(t, err, consts.ErrorDuplicateCPF)
	clientRepo.AssertNotCalled(t, "CreateClient", mock.Anything, mock.Anything)
}

func TestCreateClientMissingFields(t *testing.T) {
	service := newClientService(new(MockClientRepository), new(MockLoanRepository), new(MockPaymentRepository))

	_, err := service.CreateClient(context.Background(), models.CreateClientRequest{
		Name: "Felicity",
		CPF:  validCPF,
	})

	assert.ErrorIs(t, err, consts.ErrorMissingRequiredFields)
	var customErr *models.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.Fields, "email")
	assert.Contains(t, customErr.Fields, "surname")
	assert.Contains(t, customErr.Fields, "telephone")
}

func TestCreateClientInvalidCPF(t *testing.T) {
	service := newClientService(new(MockClientRepository), new(MockLoanRepository), new(MockPaymentRepository))

	_, err := service.CreateClient(context.Background(), models.CreateClientRequest{
		Name:      "Felicity",
		Surname:   "Jones",
		Email:     "felicity@gmail.com",
		Telephone: "11984345678",
		CPF:       "111.111.111-11",
	})

	assert.ErrorIs(t, err, consts.ErrorMissingRequiredFields)
}

func TestGetClientNotFound(t *testing.T) {
	clientRepo := new(MockClientRepository)
	service := newClientService(clientRepo, new(MockLoanRepository), new(MockPaymentRepository))

	unknownId := primitive.NewObjectID()
	clientRepo.On("ClientByFilter", bson.M{"_id": unknownId}).Return(nil, mongo.ErrNoDocuments)

	_, err := service.GetClient(context.Background(), unknownId.Hex())
	assert.ErrorIs(t, err, consts.ErrorClientNotFound)

	_, err = service.GetClient(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, consts.ErrorClientNotFound)
}

func TestGetClientDerivesIndebtedness(t *testing.T) {
	clientRepo := new(MockClientRepository)
	loanRepo := new(MockLoanRepository)
	paymentRepo := new(MockPaymentRepository)
	service := newClientService(clientRepo, loanRepo, paymentRepo)

	clientId := primitive.NewObjectID()
	loanId := primitive.NewObjectID()
	dateInitial := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

	clientRepo.On("ClientByFilter", bson.M{"_id": clientId}).Return(&models.Client{
		ClientId: clientId,
		Name:     "Felicity",
		CPF:      "52998224725",
	}, nil)
	loanRepo.On("LoansByFilter", bson.M{"clientId": clientId}).Return([]models.Loan{{
		LoanId:      loanId,
		ClientId:    clientId,
		Amount:      decimal.RequireFromString("1000"),
		Term:        12,
		Rate:        decimal.RequireFromString("0.05"),
		Installment: decimal.RequireFromString("85.60"),
		DateInitial: dateInitial,
	}}, nil)

	missed := make([]models.Payment, 3)
	for i := range missed {
		missed[i] = models.Payment{
			LoanId: loanId,
			Status: models.PaymentMissed,
			Date:   dateInitial.AddDate(0, i+1, 0),
			Amount: decimal.RequireFromString("85.60"),
		}
	}
	paymentRepo.On("PaymentsByFilter", bson.M{"loanId": loanId}).Return(missed, nil)

	response, err := service.GetClient(context.Background(), clientId.Hex())

	assert.NoError(t, err)
	assert.True(t, response.IsIndebted)
	assert.Equal(t, "Felicity", response.Name)
}
