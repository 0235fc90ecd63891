package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductsCollection     *mongo.Collection
	CategoriesCollection   *mongo.Collection
	CartsCollection        *mongo.Collection
	OrdersCollection       *mongo.Collection
	BouquetsCollection     *mongo.Collection
	FlowersCollection      *mongo.Collection
	WrappingsCollection    *mongo.Collection
	AdditionsCollection    *mongo.Collection
	UserCollection         *mongo.Collection
	BlogPostsCollection    *mongo.Collection
	BlogCommentsCollection *mongo.Collection
	TestimonialsCollection *mongo.Collection
	StoresCollection       *mongo.Collection
	DeliveryCollection     *mongo.Collection
	FAQCollection          *mongo.Collection
	SettingsCollection     *mongo.Collection
	FilesCollection        *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	shopdb := Client.Database("petaliadb")
	ProductsCollection = shopdb.Collection("products")
	CategoriesCollection = shopdb.Collection("categories")
	CartsCollection = shopdb.Collection("carts")
	OrdersCollection = shopdb.Collection("orders")
	BouquetsCollection = shopdb.Collection("bouquets")
	FlowersCollection = shopdb.Collection("flowers")
	WrappingsCollection = shopdb.Collection("wrappings")
	AdditionsCollection = shopdb.Collection("additions")
	UserCollection = shopdb.Collection("users")
	BlogPostsCollection = shopdb.Collection("blogposts")
	BlogCommentsCollection = shopdb.Collection("blogcomments")
	TestimonialsCollection = shopdb.Collection("testimonials")
	StoresCollection = shopdb.Collection("stores")
	DeliveryCollection = shopdb.Collection("delivery")
	FAQCollection = shopdb.Collection("faq")
	SettingsCollection = shopdb.Collection("settings")
	FilesCollection = shopdb.Collection("files")
}
