package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "manajemen-parkir-db"
var UserCollection string = "users"
var EstablishmentCollection string = "establishments"
var SlotCollection string = "slots"
var TransactionCollection string = "transactions"

func MongoConnect() {

	mongoURI := os.Getenv("MONGOSTRING")

	if mongoURI == "" {
		log.Fatal("MONGOSTRING belum di setting di env. coba setting dulu")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
}

// InitDatabase membuat index yang dibutuhkan aplikasi. Index parsial pada
// transactions menjamin maksimal satu transaksi non-terminal per slot dan
// per user, sebagai lapisan tambahan di atas conditional update repository.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nonTerminal := bson.M{"status": bson.M{"$in": []string{"reserved", "active"}}}

	txIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uuid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "slot_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(nonTerminal),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(nonTerminal),
		},
	}

	if _, err := GetCollection(TransactionCollection).Indexes().CreateMany(ctx, txIndexes); err != nil {
		log.Fatalf("Gagal membuat index koleksi transactions: %v", err)
	}

	slotIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "establishment_id", Value: 1}, {Key: "slot_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := GetCollection(SlotCollection).Indexes().CreateOne(ctx, slotIndex); err != nil {
		log.Fatalf("Gagal membuat index koleksi slots: %v", err)
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := GetCollection(UserCollection).Indexes().CreateOne(ctx, userIndex); err != nil {
		log.Fatalf("Gagal membuat index koleksi users: %v", err)
	}

	log.Println("Index database berhasil diinisialisasi")
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB untuk client tidak di inisialisasi. Panggil MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnect from MongoDB")
	}
}
