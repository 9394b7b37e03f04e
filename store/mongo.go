package store

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"youthchain-server/models"
)

// Connect opens the process-wide MongoDB connection and returns the database
// handle shared by all stores.
func Connect() *mongo.Database {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is not set")
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "youthchain"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	return client.Database(dbName)
}

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection("users")}
}

func (s *MongoUserStore) FindByAddress(ctx context.Context, address string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"ethereumAddress": address}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNoDocument
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) (string, error) {
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	objID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return objID.Hex(), nil
}

func (s *MongoUserStore) AddToWatchlist(ctx context.Context, address, projectID string) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"ethereumAddress": address},
		bson.M{"$addToSet": bson.M{"watchlist": projectID}})
	return err
}

func (s *MongoUserStore) RemoveFromWatchlist(ctx context.Context, address, projectID string) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"ethereumAddress": address},
		bson.M{"$pull": bson.M{"watchlist": projectID}})
	return err
}

func (s *MongoUserStore) PushProject(ctx context.Context, address, projectID string) (int64, error) {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"ethereumAddress": address},
		bson.M{"$push": bson.M{"projects": projectID}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *MongoUserStore) PushEvent(ctx context.Context, address, eventID string) (int64, error) {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"ethereumAddress": address},
		bson.M{"$push": bson.M{"events": eventID}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

type MongoProjectStore struct {
	collection *mongo.Collection
}

func NewMongoProjectStore(db *mongo.Database) *MongoProjectStore {
	return &MongoProjectStore{collection: db.Collection("projects")}
}

func (s *MongoProjectStore) FindAll(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *MongoProjectStore) FindByID(ctx context.Context, projectID string) (models.Project, error) {
	var project models.Project
	err := s.collection.FindOne(ctx, bson.M{"projectId": projectID}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return models.Project{}, ErrNoDocument
	}
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *MongoProjectStore) FindByIDs(ctx context.Context, projectIDs []string) ([]models.Project, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"projectId": bson.M{"$in": projectIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *MongoProjectStore) Insert(ctx context.Context, project models.Project) error {
	_, err := s.collection.InsertOne(ctx, project)
	return err
}

type MongoEventStore struct {
	collection *mongo.Collection
}

func NewMongoEventStore(db *mongo.Database) *MongoEventStore {
	return &MongoEventStore{collection: db.Collection("events")}
}

func (s *MongoEventStore) FindAll(ctx context.Context) ([]models.Event, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *MongoEventStore) FindByID(ctx context.Context, eventID string) (models.Event, error) {
	var event models.Event
	err := s.collection.FindOne(ctx, bson.M{"eventId": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return models.Event{}, ErrNoDocument
	}
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *MongoEventStore) FindByIDs(ctx context.Context, eventIDs []string) ([]models.Event, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"eventId": bson.M{"$in": eventIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *MongoEventStore) Insert(ctx context.Context, event models.Event) error {
	_, err := s.collection.InsertOne(ctx, event)
	return err
}
