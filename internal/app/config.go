package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/models"
	"github.com/shrimpsizemoose/stipendium/internal/tracker"
)

const (
	defaultFeedChannel        = "stipendium:changes"
	defaultMigrationsDir      = "./migrations"
	defaultUnknownScholarship = "unknown scholarship"
)

type Config struct {
	Server struct {
		Port string `toml:"port"`
	} `toml:"server"`

	Feed struct {
		Enabled  bool   `toml:"enabled"`
		RedisURL string `toml:"redis_url"`
		Channel  string `toml:"channel"`
	} `toml:"feed"`

	Journal struct {
		Enabled       bool   `toml:"enabled"`
		DSN           string `toml:"dsn"`
		MigrationsDir string `toml:"migrations_dir"`
	} `toml:"journal"`

	Seed struct {
		Demo         bool                 `toml:"demo"`
		Scholarships []models.Scholarship `toml:"scholarships"`
		Applications []models.Application `toml:"applications"`
	} `toml:"seed"`

	Display struct {
		UnknownScholarship string `toml:"unknown_scholarship"`
	} `toml:"display"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseConfig(path, data)
}

func ParseConfig(path string, data []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	config.applyEnv()
	config.applyDefaults()

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :9999")
	}
	if config.Feed.Enabled && config.Feed.RedisURL == "" {
		return nil, fmt.Errorf("feed is enabled but feed.redis_url is empty")
	}
	if config.Journal.Enabled && config.Journal.DSN == "" {
		return nil, fmt.Errorf("journal is enabled but journal.dsn is empty")
	}

	logger.Debug.Printf("Loaded config: feed=%t journal=%t demo seed=%t",
		config.Feed.Enabled, config.Journal.Enabled, config.Seed.Demo)

	return &config, nil
}

// applyEnv lets the environment (or a .env file loaded beforehand) override
// connection settings. Setting a URL also switches the component on.
func (c *Config) applyEnv() {
	if port := os.Getenv("STIPENDIUM_PORT"); port != "" {
		c.Server.Port = port
	}
	if url := os.Getenv("STIPENDIUM_REDIS_URL"); url != "" {
		c.Feed.RedisURL = url
		c.Feed.Enabled = true
	}
	if dsn := os.Getenv("STIPENDIUM_JOURNAL_DSN"); dsn != "" {
		c.Journal.DSN = dsn
		c.Journal.Enabled = true
	}
}

func (c *Config) applyDefaults() {
	if c.Feed.Channel == "" {
		c.Feed.Channel = defaultFeedChannel
	}
	if c.Journal.MigrationsDir == "" {
		c.Journal.MigrationsDir = defaultMigrationsDir
	}
	if c.Display.UnknownScholarship == "" {
		c.Display.UnknownScholarship = defaultUnknownScholarship
	}
}

// TrackerSeed builds the starting data: the demo records when seed.demo is
// set, followed by the configured ones.
func (c *Config) TrackerSeed() (tracker.Seed, error) {
	var seed tracker.Seed
	if c.Seed.Demo {
		seed = tracker.DemoSeed()
	}
	seed.Scholarships = append(seed.Scholarships, c.Seed.Scholarships...)
	seed.Applications = append(seed.Applications, c.Seed.Applications...)

	scholarshipIDs := make(map[int64]bool)
	for _, sch := range seed.Scholarships {
		switch {
		case sch.ID <= 0:
			return tracker.Seed{}, fmt.Errorf("seeded scholarship %q needs a positive id", sch.Name)
		case scholarshipIDs[sch.ID]:
			return tracker.Seed{}, fmt.Errorf("duplicate seeded scholarship id %d", sch.ID)
		case sch.Name == "":
			return tracker.Seed{}, fmt.Errorf("seeded scholarship %d has no name", sch.ID)
		}
		scholarshipIDs[sch.ID] = true
	}

	applicationIDs := make(map[int64]bool)
	for i, app := range seed.Applications {
		if app.Status == "" {
			seed.Applications[i].Status = models.StatusApplied
			app.Status = models.StatusApplied
		}
		switch {
		case app.ID <= 0:
			return tracker.Seed{}, fmt.Errorf("seeded application of %q needs a positive id", app.StudentName)
		case applicationIDs[app.ID]:
			return tracker.Seed{}, fmt.Errorf("duplicate seeded application id %d", app.ID)
		case app.StudentName == "" || app.ScholarshipID == 0:
			return tracker.Seed{}, fmt.Errorf("seeded application %d needs a student name and a scholarship id", app.ID)
		case !app.Status.Valid():
			return tracker.Seed{}, fmt.Errorf("seeded application %d: %w: %q", app.ID, models.ErrInvalidStatus, app.Status)
		}
		applicationIDs[app.ID] = true
	}

	return seed, nil
}
