package genl

import (
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strconv"
	"sync"

	"nldump/internal/nlattr"
)

// Family describes one generic netlink family.
type Family struct {
	Name string
	// ID is the netlink message type of the family. Most families get a
	// dynamic id from the kernel; 0 means not learned yet.
	ID       uint16
	Version  uint8
	Commands map[uint8]string
	Attrs    nlattr.Map
}

// CommandName returns the command's name, or CMD(n) for unknown commands.
func (f *Family) CommandName(cmd uint8) string {
	if name, ok := f.Commands[cmd]; ok {
		return name
	}
	return "CMD(" + strconv.Itoa(int(cmd)) + ")"
}

// merge layers other on top of f, producing fresh maps so values already
// handed out keep seeing the old ones.
func (f *Family) merge(other *Family) {
	if other.ID != 0 {
		f.ID = other.ID
	}
	if other.Version != 0 {
		f.Version = other.Version
	}
	if len(other.Commands) > 0 {
		cmds := make(map[uint8]string, len(f.Commands)+len(other.Commands))
		maps.Copy(cmds, f.Commands)
		maps.Copy(cmds, other.Commands)
		f.Commands = cmds
	}
	if len(other.Attrs) > 0 {
		f.Attrs = f.Attrs.Merge(other.Attrs)
	}
}

// Registry holds the known families, indexed by name and by message type.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Family
	byID   map[uint16]*Family
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		byName: make(map[string]*Family),
		byID:   make(map[uint16]*Family),
		logger: logger,
	}
}

// Register adds a family, or merges it into the family of the same name.
func (r *Registry) Register(f Family) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[f.Name]; ok {
		oldID := existing.ID
		existing.merge(&f)
		r.reindex(existing, oldID)
		r.logger.Debug("family merged", "name", f.Name, "id", existing.ID)
		return
	}
	clone := f
	if clone.Attrs == nil {
		clone.Attrs = nlattr.Map{}
	}
	r.byName[f.Name] = &clone
	r.reindex(&clone, 0)
	r.logger.Debug("family registered", "name", f.Name, "id", f.ID,
		"commands", len(f.Commands), "attrs", f.Attrs.Count())
}

// Bind sets the message type of a registered family. It reports false when
// the family is unknown.
func (r *Registry) Bind(name string, id uint16) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.byName[name]
	if !ok {
		return false
	}
	if f.ID == id {
		return true
	}
	oldID := f.ID
	f.ID = id
	r.reindex(f, oldID)
	r.logger.Debug("family bound", "name", name, "id", fmt.Sprintf("0x%04X", id))
	return true
}

func (r *Registry) reindex(f *Family, oldID uint16) {
	if oldID != 0 && oldID != f.ID && r.byID[oldID] == f {
		delete(r.byID, oldID)
	}
	if f.ID != 0 {
		r.byID[f.ID] = f
	}
}

// ByID returns a copy of the family using message type id.
func (r *Registry) ByID(id uint16) (Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byID[id]
	if !ok {
		return Family{}, false
	}
	return *f, true
}

// ByName returns a copy of the named family.
func (r *Registry) ByName(name string) (Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byName[name]
	if !ok {
		return Family{}, false
	}
	return *f, true
}

// All returns every registered family sorted by name.
func (r *Registry) All() []Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Family, 0, len(r.byName))
	for _, f := range r.byName {
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
