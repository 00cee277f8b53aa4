// Package zkconv converts a personal note archive (a "zettelkasten") between
// a loosely structured text file and a delimited table.
//
// The text form is free prose organised by short heading lines followed by a
// blank line. Inside a section, notes are introduced by bracketed markers:
//
//	Learning How to Learn
//
//	[index] 1 [zettel] Chunking: compact units of meaning
//	[reference] Oakley 2014 [keyword] memory
//
// Every heading becomes a section record and every [index] marker opens a
// note record parented to its section. Records are keyed by a strictly
// increasing spreadsheet-style day serial (days since 1899-12-30), or by the
// index content itself when it is long enough to be an external ID.
//
// The table form is read as comma separated rows under a header row and
// written as semicolon separated rows with the columns
// key, parent, title, body, reference, keyword.
//
// Usage:
//
//	res, err := zkconv.Convert("notes.txt",
//		zkconv.WithLogger(logger),
//		zkconv.WithPruneEmpty(true),
//	)
//	// res.Output == "notes_44060.512345.csv"
package zkconv
