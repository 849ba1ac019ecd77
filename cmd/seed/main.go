package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"roomdesk/internal/config"
	"roomdesk/internal/database"
	"roomdesk/internal/domain"
	"roomdesk/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM accounts")

	ctx := context.Background()
	accounts := repository.NewAccountRepository(db)
	rooms := repository.NewRoomRepository(db)

	// ================== ACCOUNTS ==================
	log.Println("Creating accounts...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Account{
		ID:           uuid.NewString(),
		Type:         domain.AccountAdmin,
		Email:        "admin@roomdesk.edu",
		PasswordHash: string(adminHash),
		Status:       domain.AccountActive,
		Verified:     true,
	}
	if err := accounts.Write(ctx, &admin); err != nil {
		log.Fatal("seeding admin failed:", err)
	}
	log.Println("Admin created: admin@roomdesk.edu / admin123")

	seedUsers := []struct {
		email string
		typ   domain.AccountType
		orgID string
	}{
		{"aruzhan.student@roomdesk.edu", domain.AccountStudent, "STU-1001"},
		{"marat.student@roomdesk.edu", domain.AccountStudent, "STU-1002"},
		{"prof.bekova@roomdesk.edu", domain.AccountFaculty, "FAC-2001"},
		{"registrar@roomdesk.edu", domain.AccountStaff, "STF-3001"},
		{"events@citypartners.example", domain.AccountExternalPartner, "EXT-4001"},
	}
	for _, u := range seedUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		account := domain.Account{
			ID:           uuid.NewString(),
			Type:         u.typ,
			OrgID:        u.orgID,
			Email:        u.email,
			PasswordHash: string(hash),
			Status:       domain.AccountActive,
			Verified:     true,
		}
		if err := accounts.Write(ctx, &account); err != nil {
			log.Fatal("seeding account failed:", err)
		}
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	buildings := []string{"Main Hall", "Science Block"}
	for _, building := range buildings {
		for floor := 1; floor <= 2; floor++ {
			for i := 1; i <= 3; i++ {
				room := domain.Room{
					ID:       uuid.NewString(),
					Building: building,
					Number:   fmt.Sprintf("%d0%d", floor, i),
					Capacity: 4 + 4*i,
					Status:   domain.RoomEnabled,
					Context:  domain.RoomContext{Condition: domain.ConditionAvailable},
				}
				if err := rooms.Write(ctx, &room); err != nil {
					log.Fatal("seeding room failed:", err)
				}
			}
		}
	}

	// One room starts out under maintenance so the admin surface has
	// something to clear.
	maintenance := domain.Room{
		ID:       uuid.NewString(),
		Building: "Main Hall",
		Number:   "301",
		Capacity: 20,
		Status:   domain.RoomEnabled,
		Context:  domain.RoomContext{Condition: domain.ConditionMaintenance},
	}
	if err := rooms.Write(ctx, &maintenance); err != nil {
		log.Fatal("seeding room failed:", err)
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin:    admin@roomdesk.edu / admin123")
	log.Println("Users:    aruzhan.student@roomdesk.edu ... events@citypartners.example / password123")
	log.Printf("Coordinator: %s / coordinator\n", repository.CoordinatorEmail)
}
