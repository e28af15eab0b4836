package badges

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

type BadgeMongoRepository struct {
	Collection *mongo.Collection
}

func NewBadgeMongoRepository(db *mongo.Client, dbName string) contracts.BadgeRepository {
	return &BadgeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBadges),
	}
}

func (repo *BadgeMongoRepository) Insert(ctx context.Context, badge *models.Badge) (string, error) {
	if badge.ID == "" {
		badge.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, badge)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *BadgeMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Badge, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var badges []models.Badge
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return badges, nil
}
