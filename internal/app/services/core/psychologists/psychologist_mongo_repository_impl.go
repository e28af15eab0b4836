package psychologists

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

type PsychologistMongoRepository struct {
	Collection *mongo.Collection
}

func NewPsychologistMongoRepository(db *mongo.Client, dbName string) contracts.PsychologistRepository {
	return &PsychologistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPsychologists),
	}
}

func (repo *PsychologistMongoRepository) Insert(ctx context.Context, psychologist *models.Psychologist) (string, error) {
	if psychologist.ID == "" {
		psychologist.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, psychologist)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *PsychologistMongoRepository) Update(ctx context.Context, psychologist *models.Psychologist) error {
	filter := bson.M{"_id": psychologist.ID}
	update := bson.M{"$set": bson.M{
		"firstName":          psychologist.FirstName,
		"lastName":           psychologist.LastName,
		"email":              psychologist.Email,
		"registrationNumber": psychologist.RegistrationNumber,
		"active":             psychologist.Active,
		"updatedAt":          psychologist.UpdatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PsychologistMongoRepository) FindByID(ctx context.Context, psychologistID string) (*models.Psychologist, error) {
	var psychologist models.Psychologist
	err := repo.Collection.FindOne(ctx, bson.M{"_id": psychologistID}).Decode(&psychologist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &psychologist, nil
}

func (repo *PsychologistMongoRepository) FindAll(ctx context.Context) ([]models.Psychologist, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var psychologists []models.Psychologist
	if err := cursor.All(ctx, &psychologists); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return psychologists, nil
}

func (repo *PsychologistMongoRepository) DeleteByID(ctx context.Context, psychologistID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": psychologistID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
