// Package artex turns arbitrary web pages into confidence-scored article
// records. It combines structured-data extraction (JSON-LD, Microdata,
// RDFa, Open Graph, Twitter Card) with readability-style DOM parsing,
// merges the two into one result, scores it, and classifies whether the
// content is actually usable (accessible vs. paywalled vs. empty).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, sqlite/).
package artex
