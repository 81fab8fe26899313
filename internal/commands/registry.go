package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// ConflictError is returned by Swap when a command name or alias is already
// bound by another group.
type ConflictError struct {
	Name     string
	Group    string
	Existing string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("command %q of group %q is already bound by group %q", e.Name, e.Group, e.Existing)
}

type binding struct {
	group   *Group
	command *Command
}

// snapshot is never mutated once published.
type snapshot struct {
	groups map[string]*Group
	index  map[string]binding
}

// Registry maps command names to handlers. Readers load one snapshot per
// dispatch; writers build a new snapshot and publish it atomically.
type Registry struct {
	mu      sync.Mutex
	current atomic.Pointer[snapshot]
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(&snapshot{
		groups: map[string]*Group{},
		index:  map[string]binding{},
	})
	return r
}

// Swap binds g, replacing any group with the same name. Other groups keep
// their bindings.
func (r *Registry) Swap(g *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current.Load()
	groups := make(map[string]*Group, len(old.groups)+1)
	for name, existing := range old.groups {
		groups[name] = existing
	}
	groups[g.Name] = g

	index, err := buildIndex(groups)
	if err != nil {
		return err
	}

	r.current.Store(&snapshot{groups: groups, index: index})
	return nil
}

// Remove unbinds a group. It reports whether the group was bound.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current.Load()
	if _, ok := old.groups[name]; !ok {
		return false
	}

	groups := make(map[string]*Group, len(old.groups))
	for n, g := range old.groups {
		if n != name {
			groups[n] = g
		}
	}
	index, _ := buildIndex(groups)
	r.current.Store(&snapshot{groups: groups, index: index})
	return true
}

// Lookup finds a command by name or alias, case-insensitively.
func (r *Registry) Lookup(name string) (*Group, *Command, bool) {
	b, ok := r.current.Load().index[strings.ToLower(name)]
	if !ok {
		return nil, nil, false
	}
	return b.group, b.command, true
}

func (r *Registry) Group(name string) (*Group, bool) {
	g, ok := r.current.Load().groups[name]
	return g, ok
}

func (r *Registry) Groups() []string {
	snap := r.current.Load()
	names := make([]string, 0, len(snap.groups))
	for name := range snap.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands lists every bound command, grouped by group name.
func (r *Registry) Commands() []*Command {
	snap := r.current.Load()
	var cmds []*Command
	for _, name := range r.Groups() {
		if g, ok := snap.groups[name]; ok {
			cmds = append(cmds, g.Commands...)
		}
	}
	return cmds
}

func buildIndex(groups map[string]*Group) (map[string]binding, error) {
	index := make(map[string]binding)
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, groupName := range names {
		g := groups[groupName]
		for _, cmd := range g.Commands {
			for _, n := range cmd.names() {
				key := strings.ToLower(n)
				if existing, ok := index[key]; ok && existing.command != cmd {
					return nil, &ConflictError{Name: n, Group: g.Name, Existing: existing.group.Name}
				}
				index[key] = binding{group: g, command: cmd}
			}
		}
	}
	return index, nil
}
