// Package paradigm holds three interchangeable implementations of the list
// transformation: procedural, object-oriented and functional.
//
// Every implementation formats each name with domain.FormatName, turns it into
// a list item for the selected domain.Style, and joins the items with "\n" in
// input order. They differ only in how that work is structured.
package paradigm
