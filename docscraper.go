// Package docscraper provides a CLI tool that crawls a documentation
// website from a single entry URL, discovers the set of lesson pages
// belonging to that documentation set, converts each page's main content
// to Markdown, and writes the results to ordinal-numbered files.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// htmltomarkdown/, sqlite/).
package docscraper
