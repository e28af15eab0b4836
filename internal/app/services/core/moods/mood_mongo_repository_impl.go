package moods

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MoodMongoRepository struct {
	Collection *mongo.Collection
}

func NewMoodMongoRepository(db *mongo.Client, dbName string) contracts.MoodRepository {
	return &MoodMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMoodEntries),
	}
}

func (repo *MoodMongoRepository) Insert(ctx context.Context, entry *models.MoodEntry) (string, error) {
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

func (repo *MoodMongoRepository) Update(ctx context.Context, entry *models.MoodEntry) error {
	filter := bson.M{"_id": entry.ID}
	update := bson.M{"$set": bson.M{
		"mood":      entry.Mood,
		"intensity": entry.Intensity,
		"note":      entry.Note,
		"entryDate": entry.EntryDate,
		"updatedAt": entry.UpdatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *MoodMongoRepository) FindByID(ctx context.Context, moodEntryID string) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := repo.Collection.FindOne(ctx, bson.M{"_id": moodEntryID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &entry, nil
}

// FindByPatientID filters by calendar month when year and month are both
// non-zero. Entry dates are stored as YYYY-MM-DD strings, so the month
// filter is a prefix match.
func (repo *MoodMongoRepository) FindByPatientID(ctx context.Context, patientID string, year, month int) ([]models.MoodEntry, error) {
	filter := bson.M{"patientId": patientID}
	if year > 0 && month > 0 {
		filter["entryDate"] = bson.M{"$regex": fmt.Sprintf("^%04d-%02d-", year, month)}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "entryDate", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.MoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (repo *MoodMongoRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *MoodMongoRepository) DeleteByID(ctx context.Context, moodEntryID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": moodEntryID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
