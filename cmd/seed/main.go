package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"acmedash/internal/config"
	"acmedash/internal/db"
	"acmedash/internal/model"
	"acmedash/internal/repository"
)

const bcryptCost = 10

// Seeds demo data in dependency order: users, customers, invoices (which
// reference customers), revenue. Any batch failure aborts the run with a
// non-zero exit, leaving later batches untouched.
func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Invoice{},
		&model.Revenue{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedUsers(ctx, repository.NewUserRepository(gormDB)); err != nil {
		log.Fatalf("Error seeding users: %v", err)
	}
	log.Printf("Seeded %d users", len(users))

	if err := repository.NewCustomerRepository(gormDB).CreateBatch(ctx, customers); err != nil {
		log.Fatalf("Error seeding customers: %v", err)
	}
	log.Printf("Seeded %d customers", len(customers))

	if err := repository.NewInvoiceRepository(gormDB).CreateBatch(ctx, invoices); err != nil {
		log.Fatalf("Error seeding invoices: %v", err)
	}
	log.Printf("Seeded %d invoices", len(invoices))

	if err := repository.NewRevenueRepository(gormDB).CreateBatch(ctx, revenue); err != nil {
		log.Fatalf("Error seeding revenue: %v", err)
	}
	log.Printf("Seeded %d revenue rows", len(revenue))

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Seed completed successfully!")
}

// seedUsers hashes each fixture password before inserting the batch.
func seedUsers(ctx context.Context, repo repository.UserRepository) error {
	rows := make([]model.User, 0, len(users))
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		rows = append(rows, model.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hashed),
		})
	}
	return repo.CreateBatch(ctx, rows)
}
