package submissions

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

type SubmissionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubmissionMongoRepository(db *mongo.Client, dbName string) contracts.SubmissionRepository {
	return &SubmissionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubmissions),
	}
}

func (repo *SubmissionMongoRepository) Insert(ctx context.Context, submission *models.Submission) (string, error) {
	if submission.ID == "" {
		submission.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, submission)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *SubmissionMongoRepository) FindByID(ctx context.Context, submissionID string) (*models.Submission, error) {
	var submission models.Submission
	err := repo.Collection.FindOne(ctx, bson.M{"_id": submissionID}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &submission, nil
}

func (repo *SubmissionMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Submission, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return submissions, nil
}

func (repo *SubmissionMongoRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
