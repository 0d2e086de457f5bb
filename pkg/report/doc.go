// Package report renders the configuration snapshot and the active rc state
// as human-readable text or as structured JSON/YAML documents.
//
// # Overview
//
// The text report has up to four blocks, blank-line separated, each omitted
// when it has no data:
//
//  1. An aligned Description/Value table of every configuration attribute,
//     sorted by attribute key.
//  2. The list of active rc files, in consultation order.
//  3. An aligned Cache Directory/Time Stamp File table, in declaration order.
//  4. A banner followed by a deterministic dump of the opaque property table.
//
// The structured report carries up to four optional fields: config (flat
// key to value mapping), rcfiles, cache (directory/timestamp pairs), and
// propT (the property table, verbatim). Field values match the text
// report's value column exactly.
//
// Rendering is deterministic: identical inputs produce byte-identical
// output. Table column widths are computed per table from the widest cell,
// using terminal display width so wide runes align correctly.
package report
