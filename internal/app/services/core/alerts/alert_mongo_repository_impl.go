package alerts

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

type AlertMongoRepository struct {
	Collection *mongo.Collection
}

func NewAlertMongoRepository(db *mongo.Client, dbName string) contracts.AlertRepository {
	return &AlertMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAlerts),
	}
}

func (repo *AlertMongoRepository) Insert(ctx context.Context, alert *models.Alert) (string, error) {
	if alert.ID == "" {
		alert.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, alert)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *AlertMongoRepository) Update(ctx context.Context, alert *models.Alert) error {
	filter := bson.M{"_id": alert.ID}
	update := bson.M{"$set": bson.M{
		"acknowledged": alert.Acknowledged,
		"updatedAt":    alert.UpdatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AlertMongoRepository) FindByID(ctx context.Context, alertID string) (*models.Alert, error) {
	var alert models.Alert
	err := repo.Collection.FindOne(ctx, bson.M{"_id": alertID}).Decode(&alert)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &alert, nil
}

func (repo *AlertMongoRepository) FindByPsychologistID(ctx context.Context, psychologistID string) ([]models.Alert, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"psychologistId": psychologistID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var alerts []models.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return alerts, nil
}
