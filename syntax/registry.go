package syntax

import (
	"fmt"
	"sync"
)

// Registry maps tag and object type names to their grammar
// descriptors for one format version. It is built once and then only
// mutated by DeclareGeneric.
type Registry struct {
	mu       sync.RWMutex
	version  string
	tagKinds map[string]*TagKind
	objects  map[string]*ObjectType
}

func NewRegistry(version string) *Registry {
	r := &Registry{
		version:  version,
		tagKinds: map[string]*TagKind{},
		objects:  map[string]*ObjectType{},
	}
	r.tagKinds[ObjectTagName] = &TagKind{
		Name:      ObjectTagName,
		Variant:   ObjectSwitch,
		MinTokens: 2,
		MaxTokens: 2,
	}
	return r
}

func (r *Registry) Version() string {
	return r.version
}

// TagKind resolves name to its registered kind, falling back to an
// ordinary kind with unbounded arity for names the grammar does not
// enumerate.
func (r *Registry) TagKind(name string) *TagKind {
	r.mu.RLock()
	k := r.tagKinds[name]
	r.mu.RUnlock()
	if k != nil {
		return k
	}
	return &TagKind{Name: name, Variant: Ordinary}
}

// ObjectType resolves an object type by name.
func (r *Registry) ObjectType(name string) (*ObjectType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ot, ok := r.objects[name]
	return ot, ok
}

// ObjectTypes returns the names of all registered object types.
func (r *Registry) ObjectTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.objects))
	for name := range r.objects {
		res = append(res, name)
	}
	return res
}

// RegisterTag registers a standalone tag kind, typically to bound the
// arity of an ordinary tag.
func (r *Registry) RegisterTag(k *TagKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.tagKinds[k.Name]; ok {
		return fmt.Errorf("tag kind %q already registered as %s", k.Name, prev.Variant)
	}
	r.tagKinds[k.Name] = k
	return nil
}

// RegisterObjectType registers ot and every tag kind it mentions.
func (r *Registry) RegisterObjectType(ot *ObjectType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.objects[ot.Name]; ok {
		return fmt.Errorf("object type %q already registered", ot.Name)
	}
	for _, k := range ot.StartTags {
		r.tagKinds[k.Name] = k
	}
	for _, k := range ot.Tags {
		r.tagKinds[k.Name] = k
	}
	for _, s := range ot.Sections {
		r.tagKinds[s.Start.Name] = s.Start
		for _, k := range s.Tags {
			r.tagKinds[k.Name] = k
		}
	}
	r.objects[ot.Name] = ot
	return nil
}

func (r *Registry) mustObject(ot *ObjectType) {
	if err := r.RegisterObjectType(ot); err != nil {
		panic(err)
	}
}

// DeclareGeneric synthesizes a grammar for an object type the
// version table does not enumerate: a tolerant type whose sole start
// tag is the type name itself, [Name:Identifier] with exactly two
// tokens. One descriptor is synthesized per name and memoized, so
// every later [OBJECT:Name] switch resolves to the same type.
func (r *Registry) DeclareGeneric(name string) *ObjectType {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ot, ok := r.objects[name]; ok {
		return ot
	}
	start := StartTag(name)
	ot := &ObjectType{
		Name:         name,
		StartTags:    map[string]*TagKind{name: start},
		AllowUnknown: true,
		Generic:      true,
	}
	if _, ok := r.tagKinds[name]; !ok {
		r.tagKinds[name] = start
	}
	r.objects[name] = ot
	return ot
}
