package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/vlsm-ctl/internal/report"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// planNameRegex validates plan names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
var planNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidatePlanName checks if a plan name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
func ValidatePlanName(name string) error {
	if name == "" {
		return fmt.Errorf("plan name cannot be empty")
	}

	if !planNameRegex.MatchString(name) {
		return fmt.Errorf("invalid plan name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

const (
	AppName        = "vlsm-ctl"
	ConfigFileName = "config.toml"
)

// ErrPlanNotFound is returned when a named plan has no file in the plans directory.
var ErrPlanNotFound = errors.New("plan not found")

// Config represents the user configuration from config.toml
type Config struct {
	Format   report.Format `toml:"format"`
	Color    bool          `toml:"color"`
	PlansDir string        `toml:"plans_dir"`
	Logging  LoggingConfig `toml:"logging"`
}

type LoggingConfig struct {
	Verbose bool `toml:"verbose"`
	JSON    bool `toml:"json"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Format: report.FormatTable,
		Color:  true,
	}
}

// Validate checks that the Config is valid and normalizes the format name.
func (c *Config) Validate() error {
	f, err := report.ParseFormat(string(c.Format))
	if err != nil {
		return err
	}
	c.Format = f
	return nil
}

// Paths holds the configured paths
type Paths struct {
	ConfigDir  string
	ConfigFile string
	PlansDir   string
	HistoryDir string
}

// DefaultPaths returns the default path configuration
func DefaultPaths() *Paths {
	configDir := filepath.Join(os.TempDir(), AppName)
	if dir, err := os.UserConfigDir(); err == nil {
		configDir = filepath.Join(dir, AppName)
	}
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, ConfigFileName),
		PlansDir:   filepath.Join(configDir, "plans"),
		HistoryDir: filepath.Join(configDir, "history"),
	}
}

// LoadConfig loads the configuration from path. A missing file yields the
// defaults; unknown keys are rejected so typos do not go unnoticed.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Plan is a saved allocation input: a base network and its demands.
type Plan struct {
	Name        string       `toml:"name" json:"name"`
	Description string       `toml:"description,omitempty" json:"description,omitempty"`
	Network     string       `toml:"network" json:"network"`
	Demands     []PlanDemand `toml:"demands" json:"demands"`
}

type PlanDemand struct {
	Name  string `toml:"name" json:"name"`
	Hosts int    `toml:"hosts" json:"hosts"`
}

// Validate checks that the Plan is valid.
func (p *Plan) Validate() error {
	if p.Network == "" {
		return fmt.Errorf("network is required")
	}
	if len(p.Demands) == 0 {
		return fmt.Errorf("at least one demand is required")
	}
	return p.Request().Validate()
}

// Request converts the plan to allocator input.
func (p *Plan) Request() *request.Request {
	demands := make([]vlsm.Demand, len(p.Demands))
	for i, d := range p.Demands {
		demands[i] = vlsm.Demand{Name: d.Name, Hosts: d.Hosts}
	}
	return &request.Request{Network: p.Network, Demands: demands}
}

// NewPlan builds a plan from a request.
func NewPlan(name string, r *request.Request) *Plan {
	p := &Plan{Name: name, Network: r.Network}
	for _, d := range r.Demands {
		p.Demands = append(p.Demands, PlanDemand{Name: d.Name, Hosts: d.Hosts})
	}
	return p
}

// LoadPlan loads a plan file. The format follows the extension: .json is
// decoded as JSON, anything else as TOML.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	var plan Plan
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &plan)
	} else {
		err = toml.Unmarshal(data, &plan)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}

	// Name defaults to the file name
	if plan.Name == "" {
		plan.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", plan.Name, err)
	}

	return &plan, nil
}

// planPath resolves name inside plansDir, trying .toml then .json.
func planPath(plansDir, name string) (string, error) {
	if err := ValidatePlanName(name); err != nil {
		return "", err
	}
	for _, ext := range []string{".toml", ".json"} {
		path, err := securejoin.SecureJoin(plansDir, name+ext)
		if err != nil {
			return "", fmt.Errorf("invalid plan path: %w", err)
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPlanNotFound, name)
}

// LoadNamedPlan loads a plan by name from plansDir
func LoadNamedPlan(plansDir, name string) (*Plan, error) {
	path, err := planPath(plansDir, name)
	if err != nil {
		return nil, err
	}
	return LoadPlan(path)
}

// SavePlan writes the plan as TOML to plansDir/<name>.toml
func SavePlan(plansDir string, plan *Plan) (string, error) {
	if err := ValidatePlanName(plan.Name); err != nil {
		return "", err
	}
	if err := plan.Validate(); err != nil {
		return "", fmt.Errorf("invalid plan %s: %w", plan.Name, err)
	}

	if err := os.MkdirAll(plansDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create plans directory: %w", err)
	}

	path, err := securejoin.SecureJoin(plansDir, plan.Name+".toml")
	if err != nil {
		return "", fmt.Errorf("invalid plan path: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to write plan: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(plan); err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}

	return path, f.Close()
}

// ListPlans returns all valid plans in plansDir, sorted by name
func ListPlans(plansDir string) ([]*Plan, error) {
	entries, err := os.ReadDir(plansDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plans directory: %w", err)
	}

	var plans []*Plan
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".toml" && ext != ".json") {
			continue
		}
		plan, err := LoadPlan(filepath.Join(plansDir, entry.Name()))
		if err != nil {
			continue // Skip invalid plans
		}
		plans = append(plans, plan)
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Name < plans[j].Name
	})

	return plans, nil
}
