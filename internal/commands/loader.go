package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"swbox/internal/application"

	"github.com/spf13/viper"
)

var ErrUnknownGroup = errors.New("unknown command group")

// Env is what group factories build their handlers from.
type Env struct {
	Services *application.Service
	Registry *Registry
	Reloader Reloader
}

type Reloader interface {
	Reload(name string) error
}

type Factory func(env *Env, settings Settings) (*Group, error)

// Manifest is one file of the groups directory.
type Manifest struct {
	Path     string
	Group    string
	Enabled  bool
	Aliases  map[string][]string
	Disabled []string
	Settings Settings
}

var manifestExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
	".toml": true,
}

// Loader builds groups from compiled-in factories, shaped by the manifests
// found in dir, and binds them into the registry.
type Loader struct {
	mu       sync.Mutex
	dir      string
	catalog  map[string]Factory
	registry *Registry
	env      *Env
	logger   Logger
}

func NewLoader(dir string, registry *Registry, env Env, logger Logger) *Loader {
	l := &Loader{
		dir:      dir,
		catalog:  make(map[string]Factory),
		registry: registry,
		env:      &env,
		logger:   logger,
	}
	l.env.Registry = registry
	if l.env.Reloader == nil {
		l.env.Reloader = l
	}
	return l
}

func (l *Loader) Register(name string, f Factory) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalog[strings.ToLower(name)] = f
}

// LoadAll binds every known group. A group that fails is logged and skipped;
// the joined failures are returned once the others are bound.
func (l *Loader) LoadAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	manifests, errs := l.readManifests()
	broken := make(map[string]bool)
	for _, err := range errs {
		var merr *ManifestError
		if errors.As(err, &merr) {
			broken[merr.Group] = true
		}
		l.logger.Error("failed to read group manifest", "error", err)
	}

	for name, m := range manifests {
		if _, ok := l.catalog[name]; !ok {
			err := fmt.Errorf("%s: %w: %s", m.Path, ErrUnknownGroup, m.Group)
			l.logger.Error("manifest names an unknown group", "path", m.Path, "group", m.Group)
			errs = append(errs, err)
		}
	}

	for _, name := range l.names() {
		m, ok := manifests[name]
		if !ok {
			if broken[name] {
				continue
			}
			m = defaultManifest(name)
		}
		if err := l.bind(name, m); err != nil {
			l.logger.Error("failed to load command group", "group", name, "error", err)
			errs = append(errs, err)
			continue
		}
		l.logger.Info("command group loaded", "group", name, "enabled", m.Enabled)
	}

	return errors.Join(errs...)
}

// Reload re-reads the manifest of one group and rebinds it. On failure the
// previous binding stays in place.
func (l *Loader) Reload(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := l.catalog[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGroup, name)
	}

	manifests, errs := l.readManifests()
	m, ok := manifests[name]
	if !ok {
		for _, err := range errs {
			var merr *ManifestError
			if errors.As(err, &merr) && merr.Group == name {
				return err
			}
		}
		m = defaultManifest(name)
	}

	if err := l.bind(name, m); err != nil {
		return err
	}
	l.logger.Info("command group reloaded", "group", name, "enabled", m.Enabled)
	return nil
}

func (l *Loader) bind(name string, m Manifest) error {
	if !m.Enabled {
		l.registry.Remove(name)
		return nil
	}

	g, err := l.build(name, m)
	if err != nil {
		return fmt.Errorf("build group %s: %w", name, err)
	}
	if err := l.registry.Swap(g); err != nil {
		return fmt.Errorf("bind group %s: %w", name, err)
	}
	return nil
}

// build runs the factory, recovering from panics so one broken group cannot
// take the loader down.
func (l *Loader) build(name string, m Manifest) (g *Group, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("factory panicked: %v", r)
		}
	}()

	g, err = l.catalog[name](l.env, m.Settings)
	if err != nil {
		return nil, err
	}
	g.Name = name
	g.Settings = m.Settings
	g.Commands = applyManifest(g.Commands, m)
	return g, nil
}

func (l *Loader) names() []string {
	names := make([]string, 0, len(l.catalog))
	for name := range l.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyManifest drops disabled commands and appends manifest aliases. Command
// values are copied; factories may share them.
func applyManifest(cmds []*Command, m Manifest) []*Command {
	disabled := make(map[string]bool, len(m.Disabled))
	for _, d := range m.Disabled {
		disabled[strings.ToLower(d)] = true
	}

	out := make([]*Command, 0, len(cmds))
	for _, c := range cmds {
		if disabled[strings.ToLower(c.Name)] {
			continue
		}
		cp := *c
		cp.Aliases = append([]string(nil), c.Aliases...)
		cp.Aliases = append(cp.Aliases, m.Aliases[strings.ToLower(c.Name)]...)
		out = append(out, &cp)
	}
	return out
}

// ManifestError reports a manifest file that could not be parsed.
type ManifestError struct {
	Path  string
	Group string
	Err   error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// readManifests parses every manifest in the groups directory, keyed by group
// name. A missing directory is not an error.
func (l *Loader) readManifests() (map[string]Manifest, []error) {
	manifests := make(map[string]Manifest)
	if l.dir == "" {
		return manifests, nil
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return manifests, nil
		}
		return manifests, []error{fmt.Errorf("read groups dir: %w", err)}
	}

	var errs []error
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || !manifestExts[ext] {
			continue
		}

		path := filepath.Join(l.dir, entry.Name())
		m, err := readManifest(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := manifests[m.Group]; ok {
			errs = append(errs, &ManifestError{Path: path, Group: m.Group, Err: fmt.Errorf("group already declared in %s", prev.Path)})
			continue
		}
		manifests[m.Group] = *m
	}
	return manifests, errs
}

func readManifest(path string) (*Manifest, error) {
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("group", stem)
	v.SetDefault("enabled", true)
	if err := v.ReadInConfig(); err != nil {
		return nil, &ManifestError{Path: path, Group: stem, Err: err}
	}

	aliases := make(map[string][]string)
	for cmd, names := range v.GetStringMapStringSlice("aliases") {
		aliases[strings.ToLower(cmd)] = names
	}

	settings := Settings{}
	for k, val := range v.GetStringMap("settings") {
		settings[strings.ToLower(k)] = val
	}

	return &Manifest{
		Path:     path,
		Group:    strings.ToLower(v.GetString("group")),
		Enabled:  v.GetBool("enabled"),
		Aliases:  aliases,
		Disabled: v.GetStringSlice("disabled"),
		Settings: settings,
	}, nil
}

func defaultManifest(name string) Manifest {
	return Manifest{Group: name, Enabled: true, Settings: Settings{}}
}
