package app

import (
	"fmt"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/feed"
	"github.com/shrimpsizemoose/stipendium/internal/journal"
	"github.com/shrimpsizemoose/stipendium/internal/metrics"
	"github.com/shrimpsizemoose/stipendium/internal/models"
	"github.com/shrimpsizemoose/stipendium/internal/tracker"
)

type Service struct {
	Config  *Config
	Tracker *tracker.Tracker
	Journal journal.Journal
	Feed    *feed.Feed

	stopMetrics func()
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewServiceFromConfig(config)
}

// NewServiceFromConfig builds the stores and attaches the observers the
// config asks for: metrics always, the journal and the Redis feed optionally.
func NewServiceFromConfig(config *Config) (*Service, error) {
	seed, err := config.TrackerSeed()
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	s := &Service{
		Config:  config,
		Tracker: tracker.New(seed),
	}
	s.stopMetrics = metrics.Track(s.Tracker)

	if config.Journal.Enabled {
		j, err := NewJournal(config.Journal.DSN, config.Journal.MigrationsDir)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to init journal: %w", err)
		}
		s.Journal = j
		s.subscribe(journal.Observer(j))
		logger.Info.Println("Change journal enabled")
	}

	if config.Feed.Enabled {
		f, err := feed.NewFeed(config.Feed.RedisURL, config.Feed.Channel)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to init feed: %w", err)
		}
		s.Feed = f
		s.subscribe(f.Observer())
		logger.Info.Printf("Publishing changes to redis channel %s", f.Channel())
	}

	return s, nil
}

func (s *Service) subscribe(observer tracker.Observer) {
	s.Tracker.Scholarships.Subscribe(observer)
	s.Tracker.Applications.Subscribe(observer)
}

type ApplicationRow struct {
	models.Application
	ScholarshipName  string `json:"scholarship_name"`
	ScholarshipKnown bool   `json:"scholarship_known"`
}

type StudentDashboard struct {
	Search       string               `json:"search"`
	StudentName  string               `json:"student_name"`
	Scholarships []models.Scholarship `json:"scholarships"`
	Applications []ApplicationRow     `json:"applications"`
}

type AdminDashboard struct {
	Scholarships []models.Scholarship `json:"scholarships"`
	Applications []ApplicationRow     `json:"applications"`
	Statuses     []models.Status      `json:"statuses"`
}

// StudentDashboard shows the scholarships matching search and the
// applications filed under exactly studentName.
func (s *Service) StudentDashboard(search, studentName string) StudentDashboard {
	return StudentDashboard{
		Search:       search,
		StudentName:  studentName,
		Scholarships: s.Tracker.Scholarships.FilterByName(search),
		Applications: s.resolve(s.Tracker.Applications.ListByStudent(studentName)),
	}
}

func (s *Service) AdminDashboard() AdminDashboard {
	return AdminDashboard{
		Scholarships: s.Tracker.Scholarships.List(),
		Applications: s.resolve(s.Tracker.Applications.List()),
		Statuses:     models.Statuses,
	}
}

func (s *Service) resolve(apps []models.Application) []ApplicationRow {
	rows := make([]ApplicationRow, 0, len(apps))
	for _, app := range apps {
		row := ApplicationRow{Application: app, ScholarshipName: s.Config.Display.UnknownScholarship}
		if sch, ok := s.Tracker.Scholarships.Lookup(app.ScholarshipID); ok {
			row.ScholarshipName = sch.Name
			row.ScholarshipKnown = true
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Service) Close() error {
	var errs []error

	if s.stopMetrics != nil {
		s.stopMetrics()
	}
	if s.Journal != nil {
		if err := s.Journal.Close(); err != nil {
			errs = append(errs, fmt.Errorf("journal: %w", err))
		}
	}
	if s.Feed != nil {
		if err := s.Feed.Close(); err != nil {
			errs = append(errs, fmt.Errorf("feed: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
