package main

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"github.com/bizmatch/backend/config"
	"github.com/bizmatch/backend/internal/database"
	"github.com/bizmatch/backend/internal/models"
)

type seedUser struct {
	email     string
	firstName string
	lastName  string
	userType  string
	profile   models.Profile
}

// Demo accounts for local development. Every account logs in with
// "password123".
var seedUsers = []seedUser{
	{
		email: "john.smith@example.com", firstName: "John", lastName: "Smith", userType: models.UserTypeBuyer,
		profile: models.Profile{
			InvestmentRange:     "1m-5m",
			ExperienceLevel:     "intermediate",
			PreferredIndustries: models.StringList{"technology", "healthcare"},
			Timeline:            "6-12 months",
			BusinessSize:        "10-50 employees",
			LocationPreference:  "United States",
			LiquidCapital:       "2m-5m",
			RiskTolerance:       "moderate",
			Bio:                 "Experienced entrepreneur looking to acquire a technology or healthcare business with strong growth potential.",
		},
	},
	{
		email: "sarah.johnson@example.com", firstName: "Sarah", lastName: "Johnson", userType: models.UserTypeBuyer,
		profile: models.Profile{
			InvestmentRange:     "500k-1m",
			ExperienceLevel:     "beginner",
			PreferredIndustries: models.StringList{"retail", "food"},
			Timeline:            "3-6 months",
			BusinessSize:        "5-20 employees",
			LocationPreference:  "California",
			LiquidCapital:       "500k-1m",
			RiskTolerance:       "conservative",
			Bio:                 "First-time buyer seeking a stable retail or food business with established customer base.",
		},
	},
	{
		email: "michael.chen@example.com", firstName: "Michael", lastName: "Chen", userType: models.UserTypeBuyer,
		profile: models.Profile{
			InvestmentRange:     "5m-10m",
			ExperienceLevel:     "advanced",
			PreferredIndustries: models.StringList{"manufacturing", "logistics"},
			Timeline:            "12-18 months",
			BusinessSize:        "50-200 employees",
			LocationPreference:  "Texas",
			LiquidCapital:       "5m-10m",
			RiskTolerance:       "aggressive",
			Bio:                 "Serial entrepreneur with 15+ years experience in manufacturing. Looking for scalable operations.",
		},
	},
	{
		email: "emily.davis@example.com", firstName: "Emily", lastName: "Davis", userType: models.UserTypeBuyer,
		profile: models.Profile{
			InvestmentRange:     "100k-500k",
			ExperienceLevel:     "beginner",
			PreferredIndustries: models.StringList{"services", "consulting"},
			Timeline:            "3-6 months",
			BusinessSize:        "1-10 employees",
			LocationPreference:  "New York",
			LiquidCapital:       "200k-500k",
			RiskTolerance:       "moderate",
			Bio:                 "Marketing professional looking to acquire a service-based business to leverage my expertise.",
		},
	},
	{
		email: "david.wilson@example.com", firstName: "David", lastName: "Wilson", userType: models.UserTypeBuyer,
		profile: models.Profile{
			InvestmentRange:     "10m+",
			ExperienceLevel:     "advanced",
			PreferredIndustries: models.StringList{"finance", "real-estate"},
			Timeline:            "6-12 months",
			BusinessSize:        "200+ employees",
			LocationPreference:  "Florida",
			LiquidCapital:       "10m+",
			RiskTolerance:       "aggressive",
			Bio:                 "Private equity investor seeking large-scale opportunities in finance or real estate sectors.",
		},
	},
	{
		email: "robert.brown@techstartup.com", firstName: "Robert", lastName: "Brown", userType: models.UserTypeSeller,
		profile: models.Profile{
			InvestmentRange:     "2m-3m",
			ExperienceLevel:     "5 years",
			PreferredIndustries: models.StringList{"technology"},
			Timeline:            "3-6 months",
			BusinessSize:        "15 employees",
			LocationPreference:  "Silicon Valley",
			LiquidCapital:       "500k-1m",
			RiskTolerance:       "moderate",
			Bio:                 "SaaS startup with $2M ARR, 40% YoY growth. Looking for strategic buyer to scale operations.",
		},
	},
	{
		email: "lisa.garcia@foodchain.com", firstName: "Lisa", lastName: "Garcia", userType: models.UserTypeSeller,
		profile: models.Profile{
			InvestmentRange:     "800k-1m",
			ExperienceLevel:     "8 years",
			PreferredIndustries: models.StringList{"food"},
			Timeline:            "6-12 months",
			BusinessSize:        "25 employees",
			LocationPreference:  "Los Angeles",
			LiquidCapital:       "100k-500k",
			RiskTolerance:       "conservative",
			Bio:                 "Family-owned restaurant chain with three locations and loyal customer base.",
		},
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash seed password: %v", err)
	}

	for _, entry := range seedUsers {
		var user models.User
		err := db.Where("email = ?", entry.email).First(&user).Error
		if err == nil {
			logrus.Infof("user %s already exists, skipping", entry.email)
			continue
		}

		user = models.User{
			Email:        entry.email,
			PasswordHash: string(hashed),
			UserType:     entry.userType,
			FirstName:    entry.firstName,
			LastName:     entry.lastName,
		}
		if err := db.Create(&user).Error; err != nil {
			logrus.Fatalf("failed to seed user %s: %v", entry.email, err)
		}

		profile := entry.profile
		profile.UserID = user.ID
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&profile).Error; err != nil {
			logrus.Fatalf("failed to seed profile for %s: %v", entry.email, err)
		}

		logrus.Infof("seeded %s (%s)", entry.email, entry.userType)
	}

	logrus.Info("seeding complete")
}
