package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/note"
)

const (
	// EnvHome overrides the home directory.
	EnvHome = "MEMOMIND_HOME"
	// EnvPrefix prefixes environment overrides of config keys,
	// e.g. MEMOMIND_PAGE or MEMOMIND_FILES_CONTACTS.
	EnvPrefix = "MEMOMIND"

	configFile = "config.yaml"
	envFile    = ".env"
)

// FilesConfig names the data files. Relative names live in the home directory.
type FilesConfig struct {
	Contacts string `yaml:"contacts" mapstructure:"contacts"`
	Notes    string `yaml:"notes" mapstructure:"notes"`
}

// Config holds MemoMind configuration.
type Config struct {
	Version  string      `yaml:"version" mapstructure:"version"`
	Language string      `yaml:"language" mapstructure:"language"`
	Page     int         `yaml:"page" mapstructure:"page"`
	Files    FilesConfig `yaml:"files" mapstructure:"files"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Version:  "1",
		Language: string(i18n.English),
		Page:     5,
		Files: FilesConfig{
			Contacts: "contacts.json",
			Notes:    "notes.json",
		},
	}
}

// Locale returns the configured display language, English when unset or unknown.
func (c Config) Locale() i18n.Locale {
	l, err := i18n.ParseLocale(c.Language)
	if err != nil {
		return i18n.English
	}
	return l
}

// Store represents a loaded MemoMind home directory.
type Store struct {
	Home   string
	Config Config
}

// Issue represents a health check finding.
type Issue struct {
	Severity string // "warning" or "error"
	Message  string
}

// Home returns the MemoMind home path, respecting the MEMOMIND_HOME env var.
func Home() string {
	if h := os.Getenv(EnvHome); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".memomind")
	}
	return filepath.Join(home, ".memomind")
}

// Exists reports whether home already holds a config file.
func Exists(home string) bool {
	_, err := os.Stat(filepath.Join(home, configFile))
	return err == nil
}

// Init creates the home directory with a default config and empty data files.
func Init(home string, force bool) error {
	if Exists(home) && !force {
		return fmt.Errorf("MemoMind home already exists at %s (use --force to reinitialize)", home)
	}
	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", home, err)
	}

	s := &Store{Home: home, Config: DefaultConfig()}
	if err := s.SaveConfig(); err != nil {
		return err
	}
	if _, err := os.Stat(s.ContactsPath()); errors.Is(err, fs.ErrNotExist) {
		if err := SaveBook(s.ContactsPath(), contact.NewBook()); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.NotesPath()); errors.Is(err, fs.ErrNotExist) {
		if err := SavePad(s.NotesPath(), note.NewPad()); err != nil {
			return err
		}
	}
	return nil
}

// Load reads an existing home directory. Missing config fields are filled
// from defaults, then MEMOMIND_* variables (from the environment or the
// home's .env file) override them. String values may reference other
// variables as ${VAR} or ${VAR:-default}.
func Load(home string) (*Store, error) {
	if err := loadDotEnv(home); err != nil {
		return nil, err
	}
	cfg, err := readConfig(filepath.Join(home, configFile))
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configFile, err)
	}
	return &Store{Home: home, Config: cfg}, nil
}

func loadDotEnv(home string) error {
	p := filepath.Join(home, envFile)
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(p); err != nil {
		return fmt.Errorf("cannot load %s: %w", p, err)
	}
	return nil
}

var envRef = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults replaces ${VAR} and ${VAR:-default}.
func expandEnvWithDefaults(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		m := envRef.FindStringSubmatch(match)
		if v := os.Getenv(m[1]); v != "" {
			return v
		}
		return m[2]
	})
}

func readConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("language", def.Language)
	v.SetDefault("page", def.Page)
	v.SetDefault("files.contacts", def.Files.Contacts)
	v.SetDefault("files.notes", def.Files.Notes)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("cannot read MemoMind config at %s: %w", path, err)
	}

	for _, k := range v.AllKeys() {
		raw := v.GetString(k)
		if raw == "" || !strings.Contains(raw, "${") {
			continue
		}
		expanded := expandEnvWithDefaults(raw)
		if n, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, n)
		} else {
			v.Set(k, expanded)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", configFile, err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if _, err := i18n.ParseLocale(cfg.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if cfg.Page < 1 {
		return fmt.Errorf("page must be a positive integer, got %d", cfg.Page)
	}
	if strings.TrimSpace(cfg.Files.Contacts) == "" || strings.TrimSpace(cfg.Files.Notes) == "" {
		return errors.New("files.contacts and files.notes must be set")
	}
	return nil
}

// SaveConfig writes the current config to config.yaml.
func (s *Store) SaveConfig() error {
	data, err := yaml.Marshal(s.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := writeAtomic(s.Path(configFile), data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ConfigKeys lists the keys accepted by SetConfigValue.
var ConfigKeys = []string{"language", "page", "files.contacts", "files.notes"}

// SetConfigValue sets a config value by dot-path key (e.g. "files.notes").
func (s *Store) SetConfigValue(key, value string) error {
	switch key {
	case "language":
		l, err := i18n.ParseLocale(value)
		if err != nil {
			return err
		}
		s.Config.Language = string(l)
		value = string(l)
	case "page":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 1 {
			return fmt.Errorf("page must be a positive integer")
		}
		s.Config.Page = n
		value = strconv.Itoa(n)
	case "files.contacts", "files.notes":
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
		if key == "files.contacts" {
			s.Config.Files.Contacts = value
		} else {
			s.Config.Files.Notes = value
		}
	default:
		return fmt.Errorf("unknown config key: %s\nValid keys: %s", key, strings.Join(ConfigKeys, ", "))
	}
	return s.writeConfigKey(key, value)
}

// writeConfigKey rewrites one key of config.yaml as stored on disk. Values
// that came from the environment or from ${VAR} references stay out of the file.
func (s *Store) writeConfigKey(key, value string) error {
	path := s.Path(configFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	setNode(doc.Content[0], strings.Split(key, "."), value)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := writeAtomic(path, out); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// setNode sets the scalar at path inside a mapping node, creating missing
// mappings on the way.
func setNode(m *yaml.Node, path []string, value string) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value != path[0] {
			continue
		}
		if len(path) == 1 {
			m.Content[i+1].Kind = yaml.ScalarNode
			m.Content[i+1].Tag = ""
			m.Content[i+1].Value = value
			m.Content[i+1].Content = nil
			return
		}
		if m.Content[i+1].Kind != yaml.MappingNode {
			*m.Content[i+1] = yaml.Node{Kind: yaml.MappingNode}
		}
		setNode(m.Content[i+1], path[1:], value)
		return
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Value: path[0]}
	if len(path) == 1 {
		m.Content = append(m.Content, k, &yaml.Node{Kind: yaml.ScalarNode, Value: value})
		return
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, k, child)
	setNode(child, path[1:], value)
}

// Path resolves a path within the home directory.
func (s *Store) Path(parts ...string) string {
	all := append([]string{s.Home}, parts...)
	return filepath.Join(all...)
}

func (s *Store) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return s.Path(name)
}

func (s *Store) ContactsPath() string { return s.resolve(s.Config.Files.Contacts) }
func (s *Store) NotesPath() string { return s.resolve(s.Config.Files.Notes) }

// CheckHealth verifies the home directory, its config and both data files.
func CheckHealth(home string) []Issue {
	var issues []Issue

	info, err := os.Stat(home)
	if err != nil {
		return []Issue{{"error", fmt.Sprintf("missing home directory: %s", home)}}
	}
	if !info.IsDir() {
		return []Issue{{"error", fmt.Sprintf("expected directory but found file: %s", home)}}
	}

	cfgPath := filepath.Join(home, configFile)
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		issues = append(issues, Issue{"error", fmt.Sprintf("cannot read config.yaml: %v", err)})
		return issues
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		issues = append(issues, Issue{"error", fmt.Sprintf("config.yaml is not valid YAML: %v", err)})
		return issues
	}

	s, err := Load(home)
	if err != nil {
		issues = append(issues, Issue{"error", err.Error()})
		return issues
	}

	if _, err := LoadBook(s.ContactsPath()); err != nil {
		issues = append(issues, dataIssue(s.ContactsPath(), err))
	}
	if _, err := LoadPad(s.NotesPath()); err != nil {
		issues = append(issues, dataIssue(s.NotesPath(), err))
	}
	return issues
}

func dataIssue(path string, err error) Issue {
	if errors.Is(err, fs.ErrNotExist) {
		return Issue{"warning", fmt.Sprintf("data file not created yet: %s", path)}
	}
	return Issue{"error", err.Error()}
}

// FixIssues attempts to repair simple issues: a missing home or config is
// recreated with defaults, and a data file that fails to load is moved aside
// so the next run starts with an empty collection.
func FixIssues(home string) []string {
	var fixed []string

	if _, err := os.Stat(home); err != nil {
		if err := os.MkdirAll(home, 0755); err == nil {
			fixed = append(fixed, fmt.Sprintf("recreated missing home directory: %s", home))
		}
	}

	cfgPath := filepath.Join(home, configFile)
	if _, err := os.Stat(cfgPath); err != nil {
		s := &Store{Home: home, Config: DefaultConfig()}
		if s.SaveConfig() == nil {
			fixed = append(fixed, "recreated missing config.yaml with defaults")
		}
	}

	s, err := Load(home)
	if err != nil {
		return fixed
	}
	stamp := time.Now().Format("20060102-150405")
	if _, err := LoadBook(s.ContactsPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		if msg, ok := moveAside(s.ContactsPath(), stamp); ok {
			fixed = append(fixed, msg)
		}
	}
	if _, err := LoadPad(s.NotesPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		if msg, ok := moveAside(s.NotesPath(), stamp); ok {
			fixed = append(fixed, msg)
		}
	}
	return fixed
}

func moveAside(path, stamp string) (string, bool) {
	dst := fmt.Sprintf("%s.corrupt-%s", path, stamp)
	if err := os.Rename(path, dst); err != nil {
		return "", false
	}
	return fmt.Sprintf("moved unreadable %s to %s", filepath.Base(path), filepath.Base(dst)), true
}
