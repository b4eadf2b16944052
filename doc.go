// Package mediarss implements the Yahoo Media RSS syndication extension
// (namespace http://search.yahoo.com/mrss/): typed value objects for every
// media:* element, best-effort loading from XML, streaming serialization
// back to XML, and the comparison helpers feed aggregators use to detect
// duplicate or equivalent entries.
//
// Parsing is best effort by design: a malformed attribute value is skipped
// and the rest of the element still loads. Only structural XML problems
// surface as errors.
package mediarss
