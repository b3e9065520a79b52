// Package raw models parsed raws: coerced token values, tags,
// records assembled from tags, and the document that indexes them.
//
// Every value keeps its verbatim source text and every tag keeps the
// comment text that preceded it, so a document renders back to the
// imported bytes exactly.
package raw
