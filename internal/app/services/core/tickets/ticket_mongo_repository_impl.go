package tickets

import (
	"context"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TicketMongoRepository struct {
	Collection *mongo.Collection
}

func NewTicketMongoRepository(db *mongo.Client, dbName string) contracts.TicketRepository {
	return &TicketMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTickets),
	}
}

func (repo *TicketMongoRepository) Insert(ctx context.Context, ticket *models.Ticket) (string, error) {
	if ticket.ID == "" {
		ticket.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, ticket)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *TicketMongoRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	filter := bson.M{"_id": ticket.ID}
	update := bson.M{"$set": bson.M{
		"status":    ticket.Status,
		"response":  ticket.Response,
		"adminId":   ticket.AdminID,
		"updatedAt": ticket.UpdatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *TicketMongoRepository) FindByID(ctx context.Context, ticketID string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := repo.Collection.FindOne(ctx, bson.M{"_id": ticketID}).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &ticket, nil
}

func (repo *TicketMongoRepository) FindByStatus(ctx context.Context, status string) ([]models.Ticket, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var tickets []models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tickets, nil
}
