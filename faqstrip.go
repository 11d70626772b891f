// Package faqstrip removes duplicated FAQ structured-data blocks from static
// page sources. Pages that also get an FAQPage schema injected at runtime by
// a dynamic template end up with two of them, which search engines reject
// as duplicate fields.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, html/, jsonld/).
package faqstrip
