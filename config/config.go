package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"hotel-ledger/storage"
)

// Config is populated from the environment (after an optional .env load in
// main).
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DataDir      string `envconfig:"DATA_DIR" default:"./data"`
	RoomsFile    string `envconfig:"ROOMS_FILE" default:"rooms.txt"`
	GuestsFile   string `envconfig:"GUESTS_FILE" default:"guests.txt"`
	BookingsFile string `envconfig:"BOOKINGS_FILE" default:"bookings.txt"`
	PaymentsFile string `envconfig:"PAYMENTS_FILE" default:"payments.txt"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Files resolves the four data file paths under DataDir.
func (c Config) Files() storage.Files {
	return storage.Files{
		Rooms:    filepath.Join(c.DataDir, c.RoomsFile),
		Guests:   filepath.Join(c.DataDir, c.GuestsFile),
		Bookings: filepath.Join(c.DataDir, c.BookingsFile),
		Payments: filepath.Join(c.DataDir, c.PaymentsFile),
	}
}
