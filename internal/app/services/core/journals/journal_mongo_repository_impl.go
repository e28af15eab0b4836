package journals

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

type JournalMongoRepository struct {
	Collection *mongo.Collection
}

func NewJournalMongoRepository(db *mongo.Client, dbName string) contracts.JournalRepository {
	return &JournalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionJournalEntries),
	}
}

func (repo *JournalMongoRepository) Insert(ctx context.Context, entry *models.JournalEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *JournalMongoRepository) Update(ctx context.Context, entry *models.JournalEntry) error {
	filter := bson.M{"_id": entry.ID}
	update := bson.M{"$set": bson.M{
		"title":     entry.Title,
		"body":      entry.Body,
		"entryDate": entry.EntryDate,
		"updatedAt": entry.UpdatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *JournalMongoRepository) FindByID(ctx context.Context, journalEntryID string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := repo.Collection.FindOne(ctx, bson.M{"_id": journalEntryID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &entry, nil
}

func (repo *JournalMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.JournalEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "entryDate", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (repo *JournalMongoRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *JournalMongoRepository) DeleteByID(ctx context.Context, journalEntryID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": journalEntryID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
