package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"winecellar/database"
	"winecellar/internal/config"
	"winecellar/internal/http-api/models"
)

// seedProducer and seedWine mirror the layout of the JSON data files;
// wines reference their producer by name.
type seedProducer struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	ImageURL    *string `json:"image_url"`
}

type seedWine struct {
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	Origin        string   `json:"origin"`
	Producer      string   `json:"producer"`
	Year          int      `json:"year"`
	Type          string   `json:"type"`
	Grape         string   `json:"grape"`
	PairingNote   *string  `json:"pairing_note"`
	AddedSulfites *string  `json:"added_sulfites"`
	Importer      *string  `json:"importer"`
	AveragePrice  *float64 `json:"average_price"`
	ImageURL      *string  `json:"image_url"`
}

func main() {
	dataDir := flag.String("data", "data", "directory containing producers.json and wines.json")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	producers, err := readSeedFile[seedProducer](filepath.Join(*dataDir, "producers.json"))
	if err != nil {
		logger.Error("could not read producers", "error", err)
		os.Exit(1)
	}
	wines, err := readSeedFile[seedWine](filepath.Join(*dataDir, "wines.json"))
	if err != nil {
		logger.Error("could not read wines", "error", err)
		os.Exit(1)
	}

	if err := seed(db, producers, wines); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeded catalog", "producers", len(producers), "wines", len(wines))
}

func readSeedFile[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return items, nil
}

// seed replaces the catalog in one transaction: wipe wines and
// producers, insert producers, then insert wines linked to their
// producer by name. User data is untouched; favorites and ratings
// referencing replaced wines become stale references and are left
// as-is.
func seed(db *gorm.DB, producers []seedProducer, wines []seedWine) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Wine{}).Error; err != nil {
			return fmt.Errorf("clear wines: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Producer{}).Error; err != nil {
			return fmt.Errorf("clear producers: %w", err)
		}

		producerIDs := make(map[string]string, len(producers))
		for _, p := range producers {
			record := &models.Producer{
				Name:        p.Name,
				Country:     p.Country,
				Description: p.Description,
				URL:         p.URL,
				ImageURL:    p.ImageURL,
			}
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("create producer %q: %w", p.Name, err)
			}
			producerIDs[p.Name] = record.ID
		}

		for _, w := range wines {
			if !models.ValidWineType(w.Type) {
				return fmt.Errorf("wine %q has unknown type %q", w.Name, w.Type)
			}
			record := &models.Wine{
				Name:          w.Name,
				Country:       w.Country,
				Origin:        w.Origin,
				Grape:         w.Grape,
				Year:          w.Year,
				Type:          w.Type,
				PairingNote:   w.PairingNote,
				AddedSulfites: w.AddedSulfites,
				Importer:      w.Importer,
				AveragePrice:  w.AveragePrice,
				ImageURL:      w.ImageURL,
			}
			if id, ok := producerIDs[w.Producer]; ok {
				record.ProducerID = &id
			}
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("create wine %q: %w", w.Name, err)
			}
		}

		return nil
	})
}
