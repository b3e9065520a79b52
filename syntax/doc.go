// Package syntax describes the raws grammar of one game-data format
// version: which tag names have bounded arity, which [OBJECT:..]
// modes exist, and which start tags, ordinary tags and subsections
// each mode accepts.
//
// A Registry is built once, from a builtin version table or a YAML
// file, and passed to the parser. Object types the table does not
// enumerate are synthesized on first encounter with a generic
// grammar, so the parser stays total over future format versions.
package syntax
