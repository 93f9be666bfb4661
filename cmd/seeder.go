package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the built-in roles and sample accounts",
	Long:  `Seed the database with the four built-in roles and one sample account per role for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		// Built-in roles keep fixed ids; custom roles start above them.
		roles := []struct {
			ID    int64
			Title string
		}{
			{1, "superadmin"},
			{2, "admin"},
			{3, "editor"},
			{4, "author"},
		}

		for _, r := range roles {
			var exists int
			row := db.Raw("SELECT 1 FROM roles WHERE id = ?", r.ID).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO roles (id, title, created_at, updated_at) VALUES (?, ?, now(), now())", r.ID, r.Title).Error; err != nil {
				log.Fatalf("failed to insert role %s: %v", r.Title, err)
			}
			fmt.Printf("Seeded role: %s\n", r.Title)
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		accounts := []struct {
			Name     string
			Email    string
			Username string
			RoleID   int64
		}{
			{"Super Admin", "superadmin@docman.local", "superadmin", 1},
			{"Admin", "admin@docman.local", "admin", 2},
			{"Editor", "editor@docman.local", "editor", 3},
			{"Author", "author@docman.local", "author", 4},
		}

		for _, a := range accounts {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE username = ?", a.Username).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists; skipping\n", a.Username)
				continue
			}

			if err := db.Exec(
				"INSERT INTO users (name, email, username, password_hash, role_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				a.Name, a.Email, a.Username, string(hash), a.RoleID,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", a.Username, err)
			}
			fmt.Printf("Seeded user: %s (%s)\n", a.Username, a.Email)
		}

		fmt.Println("Seeding complete")
	},
}
