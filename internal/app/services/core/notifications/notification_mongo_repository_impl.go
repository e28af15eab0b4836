package notifications

import (
	"context"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (repo *NotificationMongoRepository) Insert(ctx context.Context, notification *models.Notification) (string, error) {
	if notification.ID == "" {
		notification.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *NotificationMongoRepository) FindByRecipientID(ctx context.Context, recipientID string) ([]models.Notification, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"recipientId": recipientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (repo *NotificationMongoRepository) MarkAllReadByRecipientID(ctx context.Context, recipientID string) error {
	filter := bson.M{"recipientId": recipientID, "read": false}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}

	_, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
