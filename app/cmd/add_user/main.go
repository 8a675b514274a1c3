package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// Bootstraps an account from the command line, typically the first
// admin or teacher before anyone can log in.
func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", models.RoleTeacher, "role: admin, teacher, student or parent")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		flag.Usage()
		log.Fatal("email, password and first name are required")
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		log.Fatalf("Error creating user: %v", err)
	}

	fmt.Printf("User created: %s %s (%s) with role %s\n", user.FirstName, user.LastName, user.Email, *role)
}
