// Command create-user provisions an account and prints an access token for it,
// so the inquiry API can be exercised locally without a sign-in flow.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	usersrepo "inquiry_portal_backend/internal/users/repository"
	userssvc "inquiry_portal_backend/internal/users/service"
	"inquiry_portal_backend/platform/config"
	"inquiry_portal_backend/platform/db"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/validator"
)

func main() {
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "plain password (min 8 characters)")
	mobile := flag.String("mobile", "", "optional mobile number")
	role := flag.String("role", "SALES_REP", "user role")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	svc, err := userssvc.New(usersrepo.New(pool), validator.New(), log)
	if err != nil {
		panic("failed to initialize users service: " + err.Error())
	}

	in := userssvc.CreateUserInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     *role,
	}
	if *mobile != "" {
		in.Mobile = mobile
	}

	user, err := svc.CreateUser(ctx, in)
	if err != nil {
		log.Error("failed to create user", "error", err)
		fmt.Fprintln(os.Stderr, "create user:", err)
		os.Exit(1)
	}

	token, err := httpkit.SignAccessToken(cfg, user.ID, []string{string(user.Role)}, time.Now())
	if err != nil {
		log.Error("failed to sign access token", "error", err)
		os.Exit(1)
	}

	fmt.Printf("user id:      %s\n", user.ID)
	fmt.Printf("role:         %s\n", user.Role)
	fmt.Printf("access token: %s\n", token)
}
