package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"campora/internal/amenities"
	"campora/internal/listings"
	"campora/internal/policies"
	"campora/internal/shared/config"
	"campora/internal/shared/database"
	"campora/internal/users"
	"campora/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Campora Database Seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.New(cfg, logger.New())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"refunds",
		"cancellation_policies",
		"reviews",
		"payments",
		"reservations",
		"listing_amenities",
		"listing_images",
		"listings",
		"amenities",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds users, the amenity catalog, a published inventory across all
// three listing kinds, and cancellation policies
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	amenityList, err := s.SeedAmenities()
	if err != nil {
		return fmt.Errorf("failed to seed amenities: %w", err)
	}

	listingIDs, err := s.SeedListings(userIDs["admin"], amenityList)
	if err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}

	if err := s.SeedCancellationPolicies(listingIDs); err != nil {
		return fmt.Errorf("failed to seed cancellation policies: %w", err)
	}

	// Clear Redis so stale cache entries never shadow the fresh rows
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 1 admin and 2 regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@campora.dev", users.RoleAdmin},
		{"user1", "Jordan", "Reyes", "jordan@campora.dev", users.RoleUser},
		{"user2", "Sam", "Whitfield", "sam@campora.dev", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedAmenities creates the amenity catalog used by the listing filters
func (s *Seeder) SeedAmenities() ([]amenities.Amenity, error) {
	fmt.Println("  🏷️ Seeding amenities...")

	amenitiesData := []struct {
		name        string
		description string
		icon        string
	}{
		{"WiFi", "Wireless internet coverage", "wifi"},
		{"Hot Showers", "Heated shower facilities", "shower"},
		{"Fire Pit", "Dedicated campfire area", "fire"},
		{"Pet Friendly", "Dogs welcome on site", "paw"},
		{"RV Hookup", "Power and water hookups", "plug"},
		{"Lake Access", "Direct access to the waterfront", "water"},
	}

	var created []amenities.Amenity
	for _, data := range amenitiesData {
		amenity := amenities.Amenity{
			ID:          uuid.New(),
			Name:        data.name,
			Slug:        amenities.Slugify(data.name),
			Description: data.description,
			Icon:        data.icon,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&amenity).Error; err != nil {
			return nil, fmt.Errorf("failed to create amenity %s: %w", amenity.Name, err)
		}

		created = append(created, amenity)
		fmt.Printf("    ✅ Created amenity: %s\n", amenity.Name)
	}

	return created, nil
}

// SeedListings creates a published listing of every kind plus one draft
func (s *Seeder) SeedListings(adminID uuid.UUID, amenityList []amenities.Amenity) ([]uuid.UUID, error) {
	fmt.Println("  🏕️ Seeding listings...")

	listingsData := []struct {
		kind      listings.Kind
		name      string
		desc      string
		location  string
		capacity  int
		unitPrice float64
		status    listings.Status
		amenities []amenities.Amenity
	}{
		{
			listings.KindCampsite, "Pine Ridge Campsite",
			"Forested pitches above the river bend with space for tents and small campers.",
			"Pine Ridge, OR", 12, 39.50, listings.StatusPublished,
			amenityList[:4],
		},
		{
			listings.KindCampsite, "Lakeside Hollow",
			"Waterfront pitches with morning mist over the lake and a shared fire circle.",
			"Hollow Lake, WA", 8, 55.00, listings.StatusPublished,
			[]amenities.Amenity{amenityList[1], amenityList[2], amenityList[5]},
		},
		{
			listings.KindActivity, "Guided Canyon Kayaking",
			"Half-day guided paddle through the lower canyon, gear included.",
			"Echo Canyon, UT", 10, 85.00, listings.StatusPublished,
			[]amenities.Amenity{amenityList[5]},
		},
		{
			listings.KindEquipment, "4-Person Dome Tent",
			"Three-season dome tent with footprint and rainfly.",
			"Pine Ridge, OR", 15, 18.00, listings.StatusPublished,
			nil,
		},
		{
			listings.KindCampsite, "Summit Meadow (opening soon)",
			"High meadow pitches below the summit trailhead.",
			"Summit Pass, CO", 6, 47.00, listings.StatusDraft,
			nil,
		},
	}

	var listingIDs []uuid.UUID
	for _, data := range listingsData {
		listing := listings.Listing{
			ID:          uuid.New(),
			Kind:        data.kind,
			Name:        data.name,
			Description: data.desc,
			Location:    data.location,
			Capacity:    data.capacity,
			UnitPrice:   data.unitPrice,
			Status:      data.status,
			Amenities:   data.amenities,
			CreatedBy:   adminID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&listing).Error; err != nil {
			return nil, fmt.Errorf("failed to create listing %s: %w", listing.Name, err)
		}

		listingIDs = append(listingIDs, listing.ID)
		fmt.Printf("    ✅ Created listing: %s (%s, %s)\n", listing.Name, listing.Kind, listing.Status)
	}

	return listingIDs, nil
}

// SeedCancellationPolicies attaches a policy to each published listing
func (s *Seeder) SeedCancellationPolicies(listingIDs []uuid.UUID) error {
	fmt.Println("  📋 Seeding cancellation policies...")

	policiesData := []struct {
		policyType      policies.PolicyType
		fixedFee        float64
		percentage      float64
		freeCancelHours int
	}{
		{policies.PolicyFixed, 15.00, 0, 48},
		{policies.PolicyPercentage, 0, 20, 72},
		{policies.PolicyPercentage, 0, 50, 24},
		{policies.PolicyNone, 0, 0, 0},
	}

	for i, data := range policiesData {
		if i >= len(listingIDs) {
			break
		}

		policy := policies.CancellationPolicy{
			ID:              uuid.New(),
			ListingID:       listingIDs[i],
			Type:            data.policyType,
			FixedFee:        data.fixedFee,
			Percentage:      data.percentage,
			FreeCancelHours: data.freeCancelHours,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&policy).Error; err != nil {
			return fmt.Errorf("failed to create policy for listing %s: %w", listingIDs[i], err)
		}

		fmt.Printf("    ✅ Created %s policy for listing %s\n", policy.Type, policy.ListingID)
	}

	return nil
}
