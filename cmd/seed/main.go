package main

import (
	"context"
	"log"

	"gatepass/internal/config"
	"gatepass/internal/model"
	"gatepass/internal/store"
)

// Demo users for every role. Existing users are left untouched, so the seed
// is safe to run repeatedly.
var seedUsers = []model.User{
	{ID: "S101", Name: "Rahul Sharma", Password: "student123", Role: model.RoleStudent},
	{ID: "S102", Name: "Priya Patel", Password: "student123", Role: model.RoleStudent},
	{ID: "S103", Name: "Amit Kumar", Password: "student123", Role: model.RoleStudent},
	{ID: "M201", Name: "Dr. Anjali Verma", Password: "mod123", Role: model.RoleModerator},
	{ID: "G301", Name: "Suresh Singh", Password: "gate123", Role: model.RoleGatekeeper},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	dataStore := store.NewFileStore(cfg.DataFile)
	ctx := context.Background()

	ds := dataStore.Load(ctx)

	existing := make(map[string]bool, len(ds.Users))
	for _, u := range ds.Users {
		existing[u.ID] = true
	}

	seeded := 0
	for _, u := range seedUsers {
		if existing[u.ID] {
			continue
		}
		ds.Users = append(ds.Users, u)
		seeded++
	}

	if seeded == 0 {
		log.Println("All seed users already present, nothing to do")
		return
	}

	if err := dataStore.Save(ctx, ds); err != nil {
		log.Fatalf("Failed to save datastore: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", seeded)
	log.Printf("  - Total users in datastore: %d", len(ds.Users))
}
