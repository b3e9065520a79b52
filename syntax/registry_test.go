package syntax

import "testing"

func TestTagKindFallback(t *testing.T) {
	r := NewRegistry("test")
	k := r.TagKind("NEVER_SEEN")
	if k.Name != "NEVER_SEEN" {
		t.Errorf("got name %q", k.Name)
	}
	if k.Variant != Ordinary {
		t.Errorf("got variant %s", k.Variant)
	}
	if k.MinTokens != 0 || k.MaxTokens != 0 {
		t.Errorf("fallback kind is bounded: %d..%d", k.MinTokens, k.MaxTokens)
	}
}

func TestObjectSwitchKind(t *testing.T) {
	r := NewRegistry("test")
	k := r.TagKind(ObjectTagName)
	if k.Variant != ObjectSwitch {
		t.Errorf("got variant %s", k.Variant)
	}
	if k.MinTokens != 2 || k.MaxTokens != 2 {
		t.Errorf("OBJECT bounds %d..%d, want 2..2", k.MinTokens, k.MaxTokens)
	}
}

func TestDeclareGeneric(t *testing.T) {
	r := NewRegistry("test")
	ot := r.DeclareGeneric("WIDGET")
	if !ot.Generic {
		t.Error("not marked generic")
	}
	start, ok := ot.StartTags["WIDGET"]
	if !ok {
		t.Fatal("no WIDGET start tag")
	}
	if start.MinTokens != 2 || start.MaxTokens != 2 {
		t.Errorf("start bounds %d..%d, want 2..2", start.MinTokens, start.MaxTokens)
	}
	if again := r.DeclareGeneric("WIDGET"); again != ot {
		t.Error("generic type not memoized")
	}
	if got, ok := r.ObjectType("WIDGET"); !ok || got != ot {
		t.Error("generic type not resolvable")
	}
	if k := r.TagKind("WIDGET"); k != start {
		t.Error("start tag kind not registered")
	}
}

func TestDeclareGenericKeepsRegisteredKind(t *testing.T) {
	r := NewRegistry("test")
	bounded := &TagKind{Name: "GADGET", MinTokens: 3, MaxTokens: 3}
	if err := r.RegisterTag(bounded); err != nil {
		t.Fatal(err)
	}
	r.DeclareGeneric("GADGET")
	if k := r.TagKind("GADGET"); k != bounded {
		t.Error("DeclareGeneric clobbered a registered tag kind")
	}
}

func TestVersion40d(t *testing.T) {
	r := Version40d()
	if r.Version() != "0.28.181.40d" {
		t.Errorf("version %q", r.Version())
	}
	item, ok := r.ObjectType("ITEM")
	if !ok {
		t.Fatal("no ITEM type")
	}
	if len(item.StartTags) != 13 {
		t.Errorf("ITEM has %d start tags, want 13", len(item.StartTags))
	}
	if _, ok := item.StartTags["ITEM_WEAPON"]; !ok {
		t.Error("ITEM does not start with ITEM_WEAPON")
	}
	body, ok := r.ObjectType("BODY")
	if !ok {
		t.Fatal("no BODY type")
	}
	if _, ok := body.StartTags["BODYGLOSS"]; !ok {
		t.Error("BODY does not start with BODYGLOSS")
	}
	bp, ok := body.Sections["BP"]
	if !ok {
		t.Fatal("BODY has no BP section")
	}
	if !bp.Accepts("ANYTHING") {
		t.Error("BP should tolerate unknown tags")
	}
	if k := r.TagKind("BP"); k.Variant != SectionStart {
		t.Errorf("BP kind variant %s", k.Variant)
	}
	for _, v := range []string{"40d", "0.28.181.40d"} {
		if _, ok := ForVersion(v); !ok {
			t.Errorf("ForVersion(%q) not found", v)
		}
	}
}
