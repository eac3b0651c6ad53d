// Command seed наполняет базу демо-данными: тестовые пользователи,
// каталог услуг, статьи блога и FAQ. Повторный запуск безопасен:
// существующие записи пропускаются.
//
// С флагом -admin-email дополнительно создает администратора,
// запрашивая пароль интерактивно (ввод не отображается).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/scholaredit/scholaredit/internal/auth"
	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
	"github.com/scholaredit/scholaredit/internal/server/storage/sqlite"
	"github.com/scholaredit/scholaredit/internal/validation"
)

// demoUsers учетные записи для локальной разработки.
// Пароли демонстрационные, в production такой seed не запускается.
var demoUsers = []struct {
	email    string
	password string
	name     string
	role     models.Role
}{
	{"test@example.com", "test123", "Test User", models.RoleUser},
	{"admin@example.com", "admin123", "Admin User", models.RoleAdmin},
}

func main() {
	dbPath := flag.String("d", "scholaredit.db", "path to SQLite database file")
	adminEmail := flag.String("admin-email", "", "additionally create an admin with this email (prompts for password)")
	flag.Parse()

	ctx := context.Background()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(ctx, store, *adminEmail); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database seed completed")
}

func run(ctx context.Context, store *sqlite.Storage, adminEmail string) error {
	if err := seedUsers(ctx, store); err != nil {
		return err
	}
	if err := seedServices(ctx, store); err != nil {
		return err
	}
	if err := seedBlogs(ctx, store); err != nil {
		return err
	}
	if err := seedFAQs(ctx, store); err != nil {
		return err
	}
	if adminEmail != "" {
		if err := createAdmin(ctx, store, adminEmail); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(ctx context.Context, store *sqlite.Storage) error {
	for _, u := range demoUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			ID:           uuid.New().String(),
			Email:        u.email,
			PasswordHash: hash,
			Name:         u.name,
			Role:         u.role,
			CreatedAt:    time.Now(),
		}

		err = store.CreateUser(ctx, user)
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			fmt.Printf("user %s already exists, skipping\n", u.email)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.email, err)
		}

		fmt.Printf("created user: %s (%s)\n", u.email, u.role)
	}
	return nil
}

func seedServices(ctx context.Context, store *sqlite.Storage) error {
	existing, err := store.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}
	if len(existing) > 0 {
		fmt.Println("service catalog already seeded, skipping")
		return nil
	}

	services := []*models.Service{
		{
			Name:        "Scientific Editing",
			Description: "In-depth editing of manuscripts by subject-matter experts: structure, argumentation, clarity and journal fit.",
			Category:    "editing",
			PriceCents:  12000,
		},
		{
			Name:        "Proofreading",
			Description: "Grammar, spelling, punctuation and formatting check for near-final manuscripts.",
			Category:    "proofreading",
			PriceCents:  6000,
		},
		{
			Name:        "Journal Submission Support",
			Description: "Cover letter drafting, journal selection advice and submission-system handling.",
			Category:    "publication",
			PriceCents:  9000,
		},
		{
			Name:        "Translation with Editing",
			Description: "Academic translation into English followed by a full editing pass.",
			Category:    "translation",
			PriceCents:  15000,
		},
	}

	for _, svc := range services {
		svc.ID = uuid.New().String()
		svc.CreatedAt = time.Now()
		if err := store.CreateService(ctx, svc); err != nil {
			return fmt.Errorf("failed to create service %q: %w", svc.Name, err)
		}
		fmt.Printf("created service: %s\n", svc.Name)
	}
	return nil
}

func seedBlogs(ctx context.Context, store *sqlite.Storage) error {
	existing, err := store.ListBlogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list blogs: %w", err)
	}
	if len(existing) > 0 {
		fmt.Println("blog already seeded, skipping")
		return nil
	}

	posts := []*models.BlogPost{
		{
			Title:    "Five common reasons manuscripts get desk-rejected",
			Content:  "Desk rejection rarely means the science is bad. Far more often the manuscript does not match the journal scope, the abstract undersells the contribution, or the language obscures the argument...",
			Author:   "Editorial Team",
			Category: "publishing",
		},
		{
			Title:    "How to respond to reviewer comments without losing your voice",
			Content:  "A response letter is a dialogue, not a capitulation. Address every point, justify the changes you decline to make, and keep the tone factual...",
			Author:   "Editorial Team",
			Category: "writing",
		},
		{
			Title:    "Choosing between British and American English for your paper",
			Content:  "Most journals accept either convention as long as it is applied consistently. Check the author guidelines first; when they are silent, match the journal's recent issues...",
			Author:   "Editorial Team",
			Category: "language",
		},
	}

	for _, post := range posts {
		now := time.Now()
		post.ID = uuid.New().String()
		post.CreatedAt = now
		post.UpdatedAt = now
		if err := store.CreateBlog(ctx, post); err != nil {
			return fmt.Errorf("failed to create blog post %q: %w", post.Title, err)
		}
		fmt.Printf("created blog post: %s\n", post.Title)
	}
	return nil
}

func seedFAQs(ctx context.Context, store *sqlite.Storage) error {
	existing, err := store.ListFAQs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list faqs: %w", err)
	}
	if len(existing) > 0 {
		fmt.Println("faq already seeded, skipping")
		return nil
	}

	faqs := []*models.FAQ{
		{
			Question: "How long does editing take?",
			Answer:   "Standard turnaround is 5 business days for manuscripts up to 8000 words. Express options are available on request.",
			Category: "process",
		},
		{
			Question: "Do you guarantee publication?",
			Answer:   "No reputable service can guarantee acceptance. We guarantee the language will not be a reason for rejection.",
			Category: "process",
		},
		{
			Question: "Which file formats do you accept?",
			Answer:   "We work with Word and LaTeX sources. PDFs are accepted for quoting but not for editing.",
			Category: "technical",
		},
		{
			Question: "Is my manuscript kept confidential?",
			Answer:   "Yes. Editors work under NDA and files are removed from our systems 90 days after delivery.",
			Category: "privacy",
		},
	}

	for _, faq := range faqs {
		faq.ID = uuid.New().String()
		faq.CreatedAt = time.Now()
		if err := store.CreateFAQ(ctx, faq); err != nil {
			return fmt.Errorf("failed to create faq %q: %w", faq.Question, err)
		}
		fmt.Printf("created faq: %s\n", faq.Question)
	}
	return nil
}

// createAdmin интерактивно создает администратора.
// Пароль читается без эха, чтобы не попадать в историю терминала.
func createAdmin(ctx context.Context, store *sqlite.Storage, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	fmt.Printf("Password for %s: ", email)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Repeat password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if string(password) != string(confirm) {
		return errors.New("passwords do not match")
	}
	if err := validation.ValidatePassword(string(password)); err != nil {
		return err
	}

	hash, err := auth.HashPassword(string(password))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := store.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return fmt.Errorf("user %s already exists", email)
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("created admin: %s\n", email)
	return nil
}
