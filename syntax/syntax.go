package syntax

// Variant classifies a tag kind. The set is closed: a kind is an
// ordinary tag, the [OBJECT:..] mode switch, a record start tag, or a
// subsection start tag.
type Variant int

const (
	Ordinary Variant = iota
	ObjectSwitch
	ObjectStart
	SectionStart
)

func (v Variant) String() string {
	return map[Variant]string{
		Ordinary:     "Ordinary",
		ObjectSwitch: "ObjectSwitch",
		ObjectStart:  "ObjectStart",
		SectionStart: "SectionStart",
	}[v]
}

// ObjectTagName is the name of the mode switch tag.
const ObjectTagName = "OBJECT"

// TagKind is the grammar of one named tag: its variant and token
// count bounds. A zero bound is unbounded. The name itself counts as
// a token, so [NAME:ID] has two tokens.
type TagKind struct {
	Name      string
	Variant   Variant
	MinTokens int
	MaxTokens int
}

// Section is the grammar of a subsection nested in a record: the tag
// that opens it and the tags it absorbs before closing.
type Section struct {
	Name         string
	Start        *TagKind
	Tags         map[string]*TagKind
	AllowUnknown bool
}

// Accepts reports whether a tag named name belongs to the section.
func (s *Section) Accepts(name string) bool {
	if _, ok := s.Tags[name]; ok {
		return true
	}
	return s.AllowUnknown
}

// ObjectType is the grammar of one [OBJECT:<Name>] mode: the start
// tags that begin records of the type, the ordinary tags and
// subsections records accept, and whether unrecognized tags are
// stored opaquely or rejected.
type ObjectType struct {
	Name         string
	StartTags    map[string]*TagKind
	Tags         map[string]*TagKind
	Sections     map[string]*Section
	AllowUnknown bool

	// Generic marks types synthesized by Registry.DeclareGeneric.
	Generic bool
}

// NewObjectType returns a tolerant object type whose records begin
// with any of the named start tags, each [NAME:Identifier] with
// exactly two tokens.
func NewObjectType(name string, startTags ...string) *ObjectType {
	ot := &ObjectType{
		Name:         name,
		StartTags:    make(map[string]*TagKind, len(startTags)),
		AllowUnknown: true,
	}
	for _, st := range startTags {
		ot.StartTags[st] = StartTag(st)
	}
	return ot
}

// WithSections adds subsection grammars to the type.
func (ot *ObjectType) WithSections(secs ...*Section) *ObjectType {
	if ot.Sections == nil {
		ot.Sections = make(map[string]*Section, len(secs))
	}
	for _, s := range secs {
		ot.Sections[s.Name] = s
	}
	return ot
}

// WithTags adds explicitly accepted ordinary tags to the type.
func (ot *ObjectType) WithTags(kinds ...*TagKind) *ObjectType {
	if ot.Tags == nil {
		ot.Tags = make(map[string]*TagKind, len(kinds))
	}
	for _, k := range kinds {
		ot.Tags[k.Name] = k
	}
	return ot
}

// StartTag returns a record start tag kind, [name:Identifier].
func StartTag(name string) *TagKind {
	return &TagKind{Name: name, Variant: ObjectStart, MinTokens: 2, MaxTokens: 2}
}

// NewSection returns a subsection grammar opened by [name:...]. A
// section with no enumerated tags and allowUnknown set absorbs
// everything up to the parent's next known tag or start tag.
func NewSection(name string, allowUnknown bool, tags ...*TagKind) *Section {
	s := &Section{
		Name:         name,
		Start:        &TagKind{Name: name, Variant: SectionStart, MinTokens: 1},
		AllowUnknown: allowUnknown,
	}
	if len(tags) > 0 {
		s.Tags = make(map[string]*TagKind, len(tags))
		for _, k := range tags {
			s.Tags[k.Name] = k
		}
	}
	return s
}
