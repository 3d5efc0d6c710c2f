// Package orsextract builds a line-delimited JSON corpus from locally stored
// Oregon Revised Statutes pages. Each page is flattened to plain text and
// tagged with its statute number, chapter, title and volume.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, charset/, sqlite/).
package orsextract
