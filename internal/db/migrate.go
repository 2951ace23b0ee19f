package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"
)

//go:embed schema.sql
var schemaSQL string

// Statements splits the embedded schema into executable statements.
func Statements() []string {
	var out []string
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Migrate applies the schema. Every statement is CREATE ... IF NOT EXISTS so reruns are safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range Statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

const seedCity = "Navsari"

type seedAnimal struct {
	name  string
	kind  string
	age   int
	story string
	image string
}

type seedEvent struct {
	name        string
	description string
	date        time.Time
	location    string
	image       string
	eventType   string
	article     string
}

type seedGallery struct {
	caption  string
	alt      string
	featured bool
	order    int
}

var seedAnimals = []seedAnimal{
	{"Buddy", "DOG", 3, "Buddy was found injured on the streets of Navsari. After receiving medical care, he has become a loving and playful companion.", "/images/animals/dogs/small-dog-1.jpg"},
	{"Luna", "DOG", 2, "Luna is a gentle soul who was abandoned by her previous owners. She loves children and would make a perfect family pet.", "/images/animals/dogs/small-dog-3.jpg"},
	{"Ganga", "COW", 5, "Ganga was rescued from a dairy farm where she was being mistreated. She now enjoys a peaceful life at our shelter.", "/images/animals/cows/cow-1.jpg"},
	{"Tweety", "BIRD", 1, "Tweety is a beautiful parrot who was found with a broken wing. After rehabilitation, he is ready for adoption.", "/images/animals/birds/bird-1.jpg"},
}

var seedEvents = []seedEvent{
	{
		name:        "Tree Plantation Day",
		description: "Join us for a day of environmental conservation as we plant trees to create a better habitat for our rescued animals and the community. We will plant 100+ native tree species and create shaded areas for animals. Please bring comfortable clothes, a water bottle and enthusiasm to make a difference!",
		date:        time.Date(2025, 9, 14, 10, 30, 0, 0, time.UTC),
		location:    "Julie Charitable Trust, Navsari",
		image:       "/images/events/plantation.png",
		eventType:   "ENVIRONMENTAL",
		article:     "Our Tree Plantation Day was a huge success! Over 50 volunteers joined us to plant 150 native trees around our shelter, creating a greener environment for our rescued animals. We plan to make this an annual event.",
	},
	{
		name:        "Animal Adoption Drive",
		description: "Find your perfect companion at our monthly adoption drive. Meet our rescued animals and learn about responsible pet ownership. All animals are vaccinated and health-checked. Please bring valid ID proof and proof of residence.",
		date:        time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC),
		location:    "Navsari City Center",
		image:       "/images/events/plantation.png",
		eventType:   "ADOPTION_DRIVE",
		article:     "The adoption drive found loving homes for 12 dogs, 8 cats and 3 birds. Families were carefully screened and we received several new volunteer applications.",
	},
	{
		name:        "Veterinary Health Camp",
		description: "Free health check-ups and vaccinations for stray animals. Our veterinary team will provide free consultations and treatments. Please bring animals in carriers or on leashes.",
		date:        time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC),
		location:    "Julie Charitable Trust, Navsari",
		eventType:   "HEALTH_CAMP",
		article:     "Our veterinary health camp treated over 200 animals in a single day. The team vaccinated 150 animals and treated various health issues.",
	},
}

var seedGalleryItems = []seedGallery{
	{"Volunteers planting trees during our Tree Plantation Day", "Tree plantation volunteers", true, 1},
	{"Community members working together for environmental conservation", "Community tree planting", false, 2},
	{"Creating a greener environment for our rescued animals", "Green environment for animals", false, 3},
}

// Seed loads the demo city, shelter, animals, events and gallery.
// It returns false without writing anything when the city already exists.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	var existing int64
	err := db.QueryRowContext(ctx, `SELECT id FROM cities WHERE name=? LIMIT 1`, seedCity).Scan(&existing)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("seed lookup: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `INSERT INTO cities (name, state, country) VALUES (?,?,?)`, seedCity, "Gujarat", "India")
	if err != nil {
		return false, fmt.Errorf("seed city: %w", err)
	}
	cityID, _ := res.LastInsertId()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO contact_info (city_id, phone_numbers, email, address)
		VALUES (?,?,?,?)`,
		cityID,
		EncodeList([]string{"+91-9876543210", "+91-9876543211"}),
		"info@rescueandrehab.org",
		"Julie Charitable Trust, Navsari, Gujarat, India",
	); err != nil {
		return false, fmt.Errorf("seed contact info: %w", err)
	}

	res, err = tx.ExecContext(ctx, `
		INSERT INTO shelters (name, address, registration_no, city_id)
		VALUES (?,?,?,?)`,
		"Julie Charitable Trust", "Navsari, Gujarat, India", "REG-2024-001", cityID)
	if err != nil {
		return false, fmt.Errorf("seed shelter: %w", err)
	}
	shelterID, _ := res.LastInsertId()

	for _, a := range seedAnimals {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO animals (name, type, age, story, is_available, image_urls, shelter_id)
			VALUES (?,?,?,?,1,?,?)`,
			a.name, a.kind, a.age, a.story, EncodeList([]string{a.image}), shelterID); err != nil {
			return false, fmt.Errorf("seed animal %s: %w", a.name, err)
		}
	}

	var firstEventID int64
	for i, e := range seedEvents {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO events (name, description, date, location, city_id, image_url, event_type, article)
			VALUES (?,?,?,?,?,?,?,?)`,
			e.name, e.description, e.date, e.location, cityID, NullIfEmpty(e.image), e.eventType, NullIfEmpty(e.article))
		if err != nil {
			return false, fmt.Errorf("seed event %s: %w", e.name, err)
		}
		if i == 0 {
			firstEventID, _ = res.LastInsertId()
		}
	}

	for _, g := range seedGalleryItems {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO event_gallery (event_id, media_type, url, caption, alt_text, is_featured, sort_order)
			VALUES (?,?,?,?,?,?,?)`,
			firstEventID, "IMAGE", "/images/events/plantation.png", g.caption, g.alt, g.featured, g.order); err != nil {
			return false, fmt.Errorf("seed gallery: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
