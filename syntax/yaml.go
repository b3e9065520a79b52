package syntax

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// The YAML form of a grammar table, so format versions can ship as
// data files:
//
//	version: 0.28.181.40d
//	tags:
//	  - {name: NAME, min: 2, max: 2}
//	objects:
//	  - name: ITEM
//	    startTags: [ITEM_WEAPON, ITEM_ARMOR]
//	  - name: BODY
//	    startTags: [BODY, BODYGLOSS]
//	    sections:
//	      - {name: BP, allowUnknown: true}
type yamlGrammar struct {
	Version string       `yaml:"version"`
	Tags    []yamlTag    `yaml:"tags"`
	Objects []yamlObject `yaml:"objects"`
}

type yamlTag struct {
	Name string `yaml:"name"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
}

type yamlObject struct {
	Name         string        `yaml:"name"`
	StartTags    []string      `yaml:"startTags"`
	Tags         []yamlTag     `yaml:"tags"`
	Sections     []yamlSection `yaml:"sections"`
	AllowUnknown *bool         `yaml:"allowUnknown"`
}

type yamlSection struct {
	Name         string    `yaml:"name"`
	Tags         []yamlTag `yaml:"tags"`
	AllowUnknown bool      `yaml:"allowUnknown"`
}

func (yt *yamlTag) kind(v Variant) *TagKind {
	return &TagKind{Name: yt.Name, Variant: v, MinTokens: yt.Min, MaxTokens: yt.Max}
}

// LoadYAML builds a registry from a YAML grammar table.
func LoadYAML(d []byte) (*Registry, error) {
	var g yamlGrammar
	if err := yaml.Unmarshal(d, &g); err != nil {
		return nil, fmt.Errorf("error decoding grammar: %w", err)
	}
	if g.Version == "" {
		return nil, fmt.Errorf("grammar has no version")
	}
	r := NewRegistry(g.Version)
	for i := range g.Tags {
		if err := r.RegisterTag(g.Tags[i].kind(Ordinary)); err != nil {
			return nil, err
		}
	}
	for i := range g.Objects {
		yo := &g.Objects[i]
		if yo.Name == "" {
			return nil, fmt.Errorf("object type %d has no name", i)
		}
		if len(yo.StartTags) == 0 {
			return nil, fmt.Errorf("object type %q has no start tags", yo.Name)
		}
		ot := NewObjectType(yo.Name, yo.StartTags...)
		if yo.AllowUnknown != nil {
			ot.AllowUnknown = *yo.AllowUnknown
		}
		for j := range yo.Tags {
			ot.WithTags(yo.Tags[j].kind(Ordinary))
		}
		for j := range yo.Sections {
			ys := &yo.Sections[j]
			sec := NewSection(ys.Name, ys.AllowUnknown)
			for k := range ys.Tags {
				if sec.Tags == nil {
					sec.Tags = map[string]*TagKind{}
				}
				sec.Tags[ys.Tags[k].Name] = ys.Tags[k].kind(Ordinary)
			}
			ot.WithSections(sec)
		}
		if err := r.RegisterObjectType(ot); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadYAMLFile builds a registry from the YAML grammar table at path.
func LoadYAMLFile(path string) (*Registry, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read grammar %q: %w", path, err)
	}
	r, err := LoadYAML(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
