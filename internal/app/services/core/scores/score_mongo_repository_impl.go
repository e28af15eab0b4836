package scores

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

type PatientScoreMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientScoreMongoRepository(db *mongo.Client, dbName string) contracts.PatientScoreRepository {
	return &PatientScoreMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientScores),
	}
}

func (repo *PatientScoreMongoRepository) FindByPatientID(ctx context.Context, patientID string) (*models.PatientScore, error) {
	var record models.PatientScore
	err := repo.Collection.FindOne(ctx, bson.M{"patientId": patientID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (repo *PatientScoreMongoRepository) Upsert(ctx context.Context, record *models.PatientScore) error {
	if record.ID == "" {
		record.ID = utils.GenerateEntityID()
	}

	filter := bson.M{"patientId": record.PatientID}
	update := bson.M{
		"$set": bson.M{
			"lastScore":        record.LastScore,
			"lastSubmissionId": record.LastSubmissionID,
			"submissionCount":  record.SubmissionCount,
			"averageScore":     record.AverageScore,
			"updatedAt":        record.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       record.ID,
			"patientId": record.PatientID,
			"createdAt": record.CreatedAt,
		},
	}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
