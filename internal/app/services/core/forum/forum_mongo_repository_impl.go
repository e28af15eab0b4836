package forum

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

type ForumPostMongoRepository struct {
	Collection *mongo.Collection
}

func NewForumPostMongoRepository(db *mongo.Client, dbName string) contracts.ForumPostRepository {
	return &ForumPostMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionForumPosts),
	}
}

func (repo *ForumPostMongoRepository) Insert(ctx context.Context, post *models.ForumPost) (string, error) {
	if post.ID == "" {
		post.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, post)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *ForumPostMongoRepository) Update(ctx context.Context, post *models.ForumPost) error {
	filter := bson.M{"_id": post.ID}
	update := bson.M{"$set": bson.M{
		"moderationState": post.ModerationState,
		"moderatedBy":     post.ModeratedBy,
		"updatedAt":       post.UpdatedAt,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ForumPostMongoRepository) FindByID(ctx context.Context, postID string) (*models.ForumPost, error) {
	var post models.ForumPost
	err := repo.Collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &post, nil
}

func (repo *ForumPostMongoRepository) FindByModerationState(ctx context.Context, state string, page, pageSize int) ([]models.ForumPost, int64, error) {
	filter := bson.M{"moderationState": state}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var posts []models.ForumPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return posts, total, nil
}

type ForumReplyMongoRepository struct {
	Collection *mongo.Collection
}

func NewForumReplyMongoRepository(db *mongo.Client, dbName string) contracts.ForumReplyRepository {
	return &ForumReplyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionForumReplies),
	}
}

func (repo *ForumReplyMongoRepository) Insert(ctx context.Context, reply *models.ForumReply) (string, error) {
	if reply.ID == "" {
		reply.ID = utils.GenerateEntityID()
	}
	result, err := repo.Collection.InsertOne(ctx, reply)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, _ := result.InsertedID.(string)
	return insertedID, nil
}

func (repo *ForumReplyMongoRepository) FindByPostID(ctx context.Context, postID string) ([]models.ForumReply, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"postId": postID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var replies []models.ForumReply
	if err := cursor.All(ctx, &replies); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return replies, nil
}
