package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Client struct {
	ClientId  primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Surname   string             `bson:"surname"`
	Email     string             `bson:"email"`
	Telephone string             `bson:"telephone"`
	CPF       string             `bson:"cpf"`
	CreatedAt time.Time          `bson:"createdAt"`
}
