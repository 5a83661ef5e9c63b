package main

import (
	"flag"
	"fmt"
	"os"

	"classhub/app/config"
	"classhub/app/database"
	"classhub/app/models"
	"classhub/app/routes/auth"
)

func main() {
	name := flag.String("name", "", "full name")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Println("Usage: adduser -name <name> -email <email> -password <password>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	defer cfg.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Name:     *name,
		Email:    *email,
		Password: hashed,
	}

	if err := database.CreateUser(cfg.DB, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s), id=%d\n", user.Name, user.Email, user.ID)
}
