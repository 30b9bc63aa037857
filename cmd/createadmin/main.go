package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"blog-backend/internal/config"
	"blog-backend/internal/db"
	"blog-backend/internal/domains/user"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Tool dòng lệnh tạo tài khoản admin đầu tiên.
// Mật khẩu được nhập ẩn hai lần để tránh gõ nhầm.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	database, err := db.Init(cfg.Database.Path)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("❌ Failed to read username: %v", err)
	}
	username = strings.TrimSpace(username)
	if username == "" {
		log.Fatal("❌ Username must not be empty")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("❌ Failed to read password: %v", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("❌ Failed to read password: %v", err)
	}

	if string(password) != string(confirm) {
		log.Fatal("❌ Passwords do not match")
	}
	if len(password) == 0 {
		log.Fatal("❌ Password must not be empty")
	}

	svc := userService.NewUserService(userRepo.NewSQLiteRepository(database), nil)

	if err := svc.CreateAdmin(context.Background(), username, string(password)); err != nil {
		if errors.Is(err, user.ErrUserAlreadyExists) {
			log.Fatalf("❌ User %q already exists", username)
		}
		log.Fatalf("❌ Failed to create admin: %v", err)
	}

	fmt.Printf("✅ Admin %q created\n", username)
}
