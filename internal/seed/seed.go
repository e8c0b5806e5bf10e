package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"steamboost/internal/models"
	"steamboost/internal/store"
)

//go:embed default.yaml
var defaultSeed []byte

type File struct {
	Users    []User    `yaml:"users"`
	Requests []Request `yaml:"requests"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type Request struct {
	ID         int64  `yaml:"id"`
	SteamLogin string `yaml:"steam_login"`
	Amount     int64  `yaml:"amount"`
	Contact    string `yaml:"contact"`
	Status     string `yaml:"status"`
	Date       string `yaml:"date"`
	Owner      string `yaml:"owner"`
}

// Default returns the built-in demo data.
func Default() (*File, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file from path, or the built-in data when path is empty.
func Load(path string) (*File, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the same rules the stores enforce, so a bad file is
// reported before anything is loaded.
func (f *File) Validate() error {
	var errs []error

	users := make(map[string]struct{}, len(f.Users))
	for i, u := range f.Users {
		name := strings.TrimSpace(u.Username)
		if name == "" || u.Password == "" {
			errs = append(errs, fmt.Errorf("users[%d]: username and password are required", i))
		}
		switch models.UserRole(u.Role) {
		case models.RoleUser, models.RoleAdmin:
		default:
			errs = append(errs, fmt.Errorf("users[%d]: unknown role %q", i, u.Role))
		}
		if _, dup := users[name]; dup {
			errs = append(errs, fmt.Errorf("users[%d]: duplicate username %q", i, name))
		}
		users[name] = struct{}{}
	}

	ids := make(map[int64]struct{}, len(f.Requests))
	for i, r := range f.Requests {
		if r.ID <= 0 {
			errs = append(errs, fmt.Errorf("requests[%d]: id must be positive", i))
		}
		if _, dup := ids[r.ID]; dup {
			errs = append(errs, fmt.Errorf("requests[%d]: duplicate id %d", i, r.ID))
		}
		ids[r.ID] = struct{}{}
		if strings.TrimSpace(r.SteamLogin) == "" || strings.TrimSpace(r.Contact) == "" {
			errs = append(errs, fmt.Errorf("requests[%d]: steam_login and contact are required", i))
		}
		if r.Amount <= 0 {
			errs = append(errs, fmt.Errorf("requests[%d]: amount must be positive", i))
		}
		if _, ok := models.ParseStatus(r.Status); !ok {
			errs = append(errs, fmt.Errorf("requests[%d]: unknown status %q", i, r.Status))
		}
		if _, err := time.Parse(models.DateLayout, r.Date); err != nil {
			errs = append(errs, fmt.Errorf("requests[%d]: bad date %q", i, r.Date))
		}
		if r.Owner != "" {
			if _, ok := users[r.Owner]; !ok {
				errs = append(errs, fmt.Errorf("requests[%d]: owner %q is not a seeded user", i, r.Owner))
			}
		}
	}

	return errors.Join(errs...)
}

// Apply loads users and requests into the stores.
func (f *File) Apply(users *store.UserDirectory, ledger *store.RequestLedger) error {
	for _, u := range f.Users {
		name := strings.TrimSpace(u.Username)
		if _, err := users.Add(name, u.Password, models.UserRole(u.Role)); err != nil {
			return fmt.Errorf("seed user %s: %w", name, err)
		}
		log.Printf("created seed user: %s (role=%s)", name, u.Role)
	}

	for _, r := range f.Requests {
		date, err := time.Parse(models.DateLayout, r.Date)
		if err != nil {
			return fmt.Errorf("seed request %d: %w", r.ID, err)
		}
		req := models.TopUpRequest{
			ID:          r.ID,
			SteamLogin:  r.SteamLogin,
			Amount:      r.Amount,
			Contact:     r.Contact,
			Status:      models.RequestStatus(r.Status),
			CreatedDate: date,
			Owner:       r.Owner,
		}
		if err := ledger.Restore(req); err != nil {
			return fmt.Errorf("seed request %d: %w", r.ID, err)
		}
	}
	log.Printf("seeded %d requests", len(f.Requests))
	return nil
}
