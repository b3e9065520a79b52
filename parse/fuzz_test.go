package parse

import (
	"testing"

	"github.com/raws-format/go-raws/raw"
	"github.com/raws-format/go-raws/syntax"
)

// Any input that imports must render back byte for byte, and the
// rendered text must re-import to the same render.
func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"; comment\n[OBJECT:ITEM]\n[ITEM_WEAPON:SWORD]\n[NAME:sword]\n",
		"[OBJECT:WIDGET][WIDGET:A][X:1:2.5:three]",
		"[OBJECT:BODY][BODY:B][BP:UB:u:us][UPPERBODY]",
		"plain text only",
		"[]",
		"[:::]",
		"tail after tag [A] more",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		doc := raw.NewDocument()
		if err := ImportBytes(doc, syntax.Version40d(), "fuzz.txt", []byte(in)); err != nil {
			t.Skip()
		}
		out, err := doc.Render("fuzz.txt")
		if err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Fatalf("render mismatch:\n got %q\nwant %q", out, in)
		}
		doc2 := raw.NewDocument()
		if err := ImportBytes(doc2, syntax.Version40d(), "fuzz.txt", []byte(out)); err != nil {
			t.Fatalf("rendered output does not re-import: %v", err)
		}
		again, err := doc2.Render("fuzz.txt")
		if err != nil {
			t.Fatal(err)
		}
		if again != out {
			t.Fatalf("re-parse changed render:\n first %q\nsecond %q", out, again)
		}
	})
}
