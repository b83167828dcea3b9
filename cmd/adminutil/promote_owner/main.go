package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/sudo-init-do/robomart/internal/db"
)

func main() {
	email := flag.String("email", "", "Email of the user to promote to robot_owner")
	flag.Parse()

	if *email == "" {
		log.Fatalf("usage: go run cmd/adminutil/promote_owner/main.go -email user@example.com")
	}

	db.Init()

	ct, err := db.Conn.Exec(context.Background(), `UPDATE users SET role = 'robot_owner' WHERE email = $1`, *email)
	if err != nil {
		log.Fatalf("failed to promote user to robot_owner: %v", err)
	}

	if ct.RowsAffected() == 0 {
		log.Fatalf("no user found with email: %s", *email)
	}

	fmt.Printf("User %s promoted to robot_owner.\n", *email)
}
