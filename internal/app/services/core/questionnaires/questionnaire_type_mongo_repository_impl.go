package questionnaires

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

type QuestionnaireTypeMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireTypeMongoRepository(db *mongo.Client, dbName string) contracts.QuestionnaireTypeRepository {
	return &QuestionnaireTypeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaireTypes),
	}
}

func (repo *QuestionnaireTypeMongoRepository) FindByName(ctx context.Context, typeName string) (*models.QuestionnaireType, error) {
	var questionnaireType models.QuestionnaireType
	err := repo.Collection.FindOne(ctx, bson.M{"name": typeName}).Decode(&questionnaireType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaireType, nil
}

func (repo *QuestionnaireTypeMongoRepository) FindAll(ctx context.Context) ([]models.QuestionnaireType, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var questionnaireTypes []models.QuestionnaireType
	if err := cursor.All(ctx, &questionnaireTypes); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaireTypes, nil
}

func (repo *QuestionnaireTypeMongoRepository) Insert(ctx context.Context, questionnaireType *models.QuestionnaireType) (string, error) {
	if questionnaireType.ID == "" {
		questionnaireType.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, questionnaireType)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *QuestionnaireTypeMongoRepository) Update(ctx context.Context, questionnaireType *models.QuestionnaireType) error {
	filter := bson.M{"name": questionnaireType.Name}
	update := bson.M{"$set": bson.M{
		"description":           questionnaireType.Description,
		"questions":             questionnaireType.Questions,
		"answerFields":          questionnaireType.AnswerFields,
		"scoreTable":            questionnaireType.ScoreTable,
		"administrationMinutes": questionnaireType.AdministrationMinutes,
		"updatedAt":             questionnaireType.UpdatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *QuestionnaireTypeMongoRepository) DeleteByName(ctx context.Context, typeName string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"name": typeName})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
