package raw

import (
	"errors"
	"testing"

	"github.com/raws-format/go-raws/syntax"
)

func mkRecord(t *testing.T, d *Document, file, typ, subtype, name string) *Record {
	t.Helper()
	start, err := NewTag(syntax.StartTag(subtype), []string{subtype, name}, d.Interner())
	if err != nil {
		t.Fatal(err)
	}
	start.File = file
	return &Record{Type: typ, Subtype: subtype, Name: name, Start: start}
}

func TestIndexAndLookup(t *testing.T) {
	d := NewDocument()
	rec := mkRecord(t, d, "a.txt", "ITEM", "ITEM_WEAPON", "SWORD")
	if prev := d.Index(rec); prev != nil {
		t.Fatalf("unexpected previous record %v", prev)
	}
	got, ok := d.Lookup("ITEM", "ITEM_WEAPON", "SWORD")
	if !ok || got != rec {
		t.Fatal("lookup failed")
	}
	if _, ok := d.Lookup("ITEM", "ITEM_ARMOR", "SWORD"); ok {
		t.Error("lookup matched wrong subtype")
	}
	// same identifier under another subtype is a distinct key
	other := mkRecord(t, d, "a.txt", "ITEM", "ITEM_ARMOR", "SWORD")
	if prev := d.Index(other); prev != nil {
		t.Errorf("subtype collision: %v", prev)
	}
	dup := mkRecord(t, d, "b.txt", "ITEM", "ITEM_WEAPON", "SWORD")
	if prev := d.Index(dup); prev != rec {
		t.Errorf("Index returned %v, want first record", prev)
	}
}

func TestDropFile(t *testing.T) {
	d := NewDocument()
	f := d.AddFile("a.txt")
	rec := mkRecord(t, d, "a.txt", "ITEM", "ITEM_WEAPON", "SWORD")
	f.Nodes = append(f.Nodes, rec)
	d.Index(rec)

	d.DropFile("a.txt")
	if _, ok := d.File("a.txt"); ok {
		t.Error("file still present")
	}
	if _, ok := d.Lookup("ITEM", "ITEM_WEAPON", "SWORD"); ok {
		t.Error("index entry still present")
	}
	if len(d.Files()) != 0 {
		t.Error("file order still lists dropped file")
	}
}

func TestAddFileReplaces(t *testing.T) {
	d := NewDocument()
	f := d.AddFile("a.txt")
	rec := mkRecord(t, d, "a.txt", "ITEM", "ITEM_WEAPON", "SWORD")
	f.Nodes = append(f.Nodes, rec)
	d.Index(rec)

	d.AddFile("a.txt")
	if _, ok := d.Lookup("ITEM", "ITEM_WEAPON", "SWORD"); ok {
		t.Error("stale index entry after re-add")
	}
	if n := len(d.Files()); n != 1 {
		t.Errorf("%d files, want 1", n)
	}
}

func TestRecordsSorted(t *testing.T) {
	d := NewDocument()
	for _, name := range []string{"ZEBRA", "AXE", "MACE"} {
		d.Index(mkRecord(t, d, "a.txt", "ITEM", "ITEM_WEAPON", name))
	}
	recs := d.Records()
	if len(recs) != 3 {
		t.Fatalf("%d records", len(recs))
	}
	for i, want := range []string{"AXE", "MACE", "ZEBRA"} {
		if recs[i].Name != want {
			t.Errorf("records[%d] = %s, want %s", i, recs[i].Name, want)
		}
	}
}

func TestValidate(t *testing.T) {
	d := NewDocument()
	f := d.AddFile("a.txt")
	rec := mkRecord(t, d, "a.txt", "ITEM", "ITEM_WEAPON", "SWORD")
	f.Nodes = append(f.Nodes, rec)

	// a tag whose kind tightened after construction
	bad, err := NewTag(&syntax.TagKind{Name: "NAME"}, []string{"NAME"}, d.Interner())
	if err != nil {
		t.Fatal(err)
	}
	bad.Kind = &syntax.TagKind{Name: "NAME", MinTokens: 2, MaxTokens: 2}
	bad.File, bad.Line = "a.txt", 3
	rec.Append(bad)

	errs := d.Validate()
	if len(errs) != 1 {
		t.Fatalf("%d violations, want 1: %v", len(errs), errs)
	}
	if !errors.Is(errs[0], ErrInvalidTag) {
		t.Errorf("violation %v is not ErrInvalidTag", errs[0])
	}
}

func TestRenderUnknownFile(t *testing.T) {
	d := NewDocument()
	if _, err := d.Render("nope.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
