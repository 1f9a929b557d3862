package main

import (
	"fmt"
	"log"

	"github.com/lakelodge/internal/config"
	"github.com/lakelodge/internal/db"
	"github.com/lakelodge/internal/service"
)

// Seeds a development database with the lodge's activities, page content
// and default gallery images.
func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	activities := service.NewActivityService(db.DB)
	for i, input := range defaultActivities() {
		input.DisplayOrder = i + 1
		if _, err := activities.Create(input); err != nil {
			log.Printf("skipping activity %q: %v", input.Name, err)
		}
	}

	pages := service.NewPageService(db.DB)
	for slug, input := range defaultPages() {
		if _, err := pages.Save(slug, input); err != nil {
			log.Printf("skipping page %q: %v", slug, err)
		}
	}

	galleries := service.NewGalleryService(db.DB, nil)
	for _, category := range []string{"lakes", "deer-hunting", "turkey-hunting", "fishing"} {
		inserted, failed, err := galleries.SeedDefaults(category)
		if err != nil {
			log.Printf("skipping gallery seed for %q: %v", category, err)
			continue
		}
		fmt.Printf("seeded %s: %d inserted, %d failed\n", category, inserted, failed)
	}

	fmt.Println("sample data ready")
}

func defaultActivities() []service.ActivityInput {
	return []service.ActivityInput{
		{
			Name:             "The Lakes",
			Slug:             "the-lakes",
			Type:             db.ActivityTypeLake,
			ShortDescription: "Three private, fully stocked lakes",
			Features:         []string{"Lake Scott", "Lake Shannon", "Lake Patrick"},
			IsFeatured:       true,
		},
		{
			Name:             "Deer Hunting",
			Slug:             "deer-hunting",
			Type:             db.ActivityTypeDeerHunting,
			ShortDescription: "Guided whitetail hunts on private grounds",
			DailyRate:        150,
			SeasonInfo:       "October through January",
			IsFeatured:       true,
		},
		{
			Name:             "Turkey Hunting",
			Slug:             "turkey-hunting",
			Type:             db.ActivityTypeTurkeyHunting,
			ShortDescription: "Spring gobbler season on managed land",
			DailyRate:        150,
			SeasonInfo:       "March through May",
			IsFeatured:       true,
		},
		{
			Name:             "Bass Fishing",
			Slug:             "bass-fishing",
			Type:             db.ActivityTypeBassFishing,
			ShortDescription: "Trophy largemouth in private water",
			DailyRate:        75,
			IsFeatured:       true,
		},
	}
}

func defaultPages() map[string]service.PageInput {
	return map[string]service.PageInput{
		"home": {
			HeroTitle:    "King's Family Lakes",
			HeroSubtitle: "Hunting, fishing and lodging in the heart of the South",
		},
		"contact": {
			HeroTitle:    "Contact Us",
			HeroSubtitle: "Book your next trip",
		},
		"directions": {
			HeroTitle: "Finding the Lodge",
		},
	}
}
