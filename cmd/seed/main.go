package main

import (
	"log"
	"os"

	"personal-crm-be/internal/model"
	"personal-crm-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo user...")

	var user model.User
	if err := db.Where("email = ?", "demo@example.com").First(&user).Error; err == nil {
		log.Println("Demo user already exists, skipping...")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing password: %v", err)
		}
		user = model.User{
			Id:           uuid.New(),
			Email:        "demo@example.com",
			PasswordHash: string(hash),
			FullName:     "Demo User",
			Role:         "user",
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Error creating demo user: %v", err)
		}
		log.Printf("Created demo user: %s", user.Email)
	}

	log.Println("Seeding demo contacts...")

	contacts := []model.Contact{
		{FullName: "Maya Chen", Tier: 1},
		{FullName: "Raj Patel", Tier: 2},
		{FullName: "Sofia Alvarez", Tier: 3},
	}

	for _, c := range contacts {
		var existing model.Contact
		if err := db.Where("user_id = ? AND full_name = ?", user.Id, c.FullName).First(&existing).Error; err == nil {
			log.Printf("Contact '%s' already exists, skipping...", c.FullName)
			continue
		}

		c.Id = uuid.New()
		c.UserId = user.Id
		c.VectorCollectionId = "contact_" + uuid.NewString()[:8]
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating contact '%s': %v", c.FullName, err)
		} else {
			log.Printf("Created contact: %s (tier %d)", c.FullName, c.Tier)
		}
	}

	log.Println("Seeding completed!")
}
