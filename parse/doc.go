// Package parse assembles tokenized raws into typed records.
//
// # Usage
//
//	doc := raw.NewDocument()
//	reg := syntax.Version40d()
//	if err := parse.Import(doc, reg, "item_weapon.txt", f); err != nil {
//	    return err
//	}
//	rec, _ := doc.Lookup("ITEM", "ITEM_WEAPON", "SWORD")
//
// Import fails fast: the first parse error, arity violation,
// unknown or disallowed tag, or duplicate definition aborts the
// import with filename:line context. A failed file may leave partial
// state in the document; discard it with Document.DropFile.
//
// # Related Packages
//
//   - github.com/raws-format/go-raws/token - tokenization
//   - github.com/raws-format/go-raws/syntax - grammar tables
//   - github.com/raws-format/go-raws/raw - document model
//   - github.com/raws-format/go-raws/encode - render documents back out
package parse
