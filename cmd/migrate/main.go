package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"blog-backend/internal/config"
	"blog-backend/internal/db"
	"blog-backend/internal/domains/category"
	categoryRepo "blog-backend/internal/domains/category/repository"
	"blog-backend/pkg/database"
)

// Tool di cư nội dung tĩnh từ thư mục public (index.json + file Markdown)
// vào SQLite. Tool xoá sạch 4 bảng nội dung trước khi import nên chỉ
// dùng khi dựng lại dữ liệu từ đầu.

// Ánh xạ slug chuyên mục sang tên hiển thị; slug lạ được viết hoa chữ đầu
var categoryNames = map[string]string{
	"frontend": "技术手记",
	"topics":   "奇思妙想",
	"novels":   "幻想物语",
	"tools":    "工具箱",
}

type friendEntry struct {
	Name   string   `json:"name"`
	Desc   string   `json:"desc"`
	URL    string   `json:"url"`
	Avatar string   `json:"avatar"`
	Tags   []string `json:"tags"`
}

type artworkEntry struct {
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Fullsize    string `json:"fullsize"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type articleEntry struct {
	Slug    string `json:"id"`
	UID     string `json:"uid"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"` // đường dẫn file .md, vd /article/frontend/foo.md
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	publicDir := cfg.Upload.PublicDir
	log.Printf("📂 Public dir: %s", publicDir)
	if _, err := os.Stat(publicDir); err != nil {
		log.Fatalf("❌ Public dir not found: %v", err)
	}

	conn, err := db.Init(cfg.Database.Path)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn.DB); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	log.Println("🚀 Starting content migration...")

	if err := clearData(ctx, conn); err != nil {
		log.Fatalf("❌ Failed to clear tables: %v", err)
	}

	// Mỗi bước chạy trong transaction riêng: lỗi một bước không phá
	// kết quả các bước trước
	if err := migrateFriends(ctx, conn, publicDir); err != nil {
		log.Printf("❌ Friends migration failed: %v", err)
	}
	if err := migrateArtworks(ctx, conn, publicDir); err != nil {
		log.Printf("❌ Artworks migration failed: %v", err)
	}
	if err := migrateArticles(ctx, conn, publicDir); err != nil {
		log.Printf("❌ Articles migration failed: %v", err)
	}

	log.Println("✨ Migration finished")
}

// clearData xoá sạch dữ liệu nội dung hiện có để tránh import trùng
func clearData(ctx context.Context, conn *sqlx.DB) error {
	log.Println("🧹 Clearing existing tables...")

	return database.WithTransaction(ctx, conn, func(tx *sqlx.Tx) error {
		for _, table := range []string{"articles", "categories", "friends", "artworks"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func migrateFriends(ctx context.Context, conn *sqlx.DB, publicDir string) error {
	log.Println("📦 Migrating friends...")

	var payload struct {
		Friends []friendEntry `json:"friends"`
	}
	if err := readJSON(filepath.Join(publicDir, "friends", "index.json"), &payload); err != nil {
		return err
	}

	return database.WithTransaction(ctx, conn, func(tx *sqlx.Tx) error {
		for _, f := range payload.Friends {
			tags, err := json.Marshal(f.Tags)
			if err != nil {
				return fmt.Errorf("marshal tags for %q: %w", f.Name, err)
			}
			if f.Tags == nil {
				tags = []byte("[]")
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO friends (name, "desc", url, avatar, tags) VALUES (?, ?, ?, ?, ?)`,
				f.Name, f.Desc, f.URL, f.Avatar, string(tags))
			if err != nil {
				return fmt.Errorf("insert friend %q: %w", f.Name, err)
			}
			log.Printf("   -> friend: %s", f.Name)
		}
		return nil
	})
}

func migrateArtworks(ctx context.Context, conn *sqlx.DB, publicDir string) error {
	log.Println("📦 Migrating artworks...")

	var payload struct {
		Artworks []artworkEntry `json:"artworks"`
	}
	if err := readJSON(filepath.Join(publicDir, "artwork", "index.json"), &payload); err != nil {
		return err
	}

	return database.WithTransaction(ctx, conn, func(tx *sqlx.Tx) error {
		for _, a := range payload.Artworks {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO artworks (title, thumbnail, fullsize, description, date) VALUES (?, ?, ?, ?, ?)`,
				a.Title, a.Thumbnail, a.Fullsize, a.Description, a.Date)
			if err != nil {
				return fmt.Errorf("insert artwork %q: %w", a.Title, err)
			}
			log.Printf("   -> artwork: %s", a.Title)
		}
		return nil
	})
}

func migrateArticles(ctx context.Context, conn *sqlx.DB, publicDir string) error {
	log.Println("📦 Migrating articles and categories...")

	// Top-level keys của index.json là slug chuyên mục
	var index map[string][]articleEntry
	if err := readJSON(filepath.Join(publicDir, "article", "index.json"), &index); err != nil {
		return err
	}

	// Chuyên mục được tạo idempotent trước, ngoài transaction của bài viết
	repo := categoryRepo.NewSQLiteRepository(conn)
	categories := make(map[string]*category.Category, len(index))
	for categorySlug := range index {
		name, ok := categoryNames[categorySlug]
		if !ok {
			name = capitalize(categorySlug)
		}

		cat, err := repo.CreateIfAbsent(ctx, categorySlug, name)
		if err != nil {
			return fmt.Errorf("create category %q: %w", categorySlug, err)
		}
		categories[categorySlug] = cat
		log.Printf("   + category: [%s] (%s)", name, categorySlug)
	}

	return database.WithTransaction(ctx, conn, func(tx *sqlx.Tx) error {
		for categorySlug, articles := range index {
			categoryID := categories[categorySlug].ID

			for _, a := range articles {
				if a.Slug == "" {
					log.Printf("     ⚠️ article missing slug in %s: title=%s", categorySlug, a.Title)
				}
				if a.Title == "" {
					log.Printf("     ⚠️ article missing title: slug=%s", a.Slug)
				}
				if a.Date == "" {
					log.Printf("     ⚠️ article missing date: slug=%s", a.Slug)
				}

				content := readMarkdown(publicDir, a.Content)

				_, err := tx.ExecContext(ctx,
					`INSERT INTO articles (slug, uid, title, date, content, category_id) VALUES (?, ?, ?, ?, ?, ?)`,
					a.Slug, a.UID, a.Title, a.Date, content, categoryID)
				if err != nil {
					return fmt.Errorf("insert article %q: %w", a.Slug, err)
				}
				log.Printf("     -> article: %s (%d bytes)", a.Title, len(content))
			}
		}
		return nil
	})
}

// readMarkdown đọc nội dung file .md được tham chiếu từ index.json;
// thiếu đường dẫn hoặc thiếu file thì trả về chuỗi rỗng kèm cảnh báo
func readMarkdown(publicDir, contentPath string) string {
	if contentPath == "" {
		return ""
	}

	path := filepath.Join(publicDir, strings.TrimPrefix(contentPath, "/"))
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("     ⚠️ markdown file not found: %s", path)
		return ""
	}
	return string(data)
}

func readJSON(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
