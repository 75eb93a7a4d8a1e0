// Package display defines the serialized form display document: the flat,
// map-based shape persisted by a content-modeling system to describe which
// fields appear on an entity's edit form, with which widget, arranged into
// which visual groups. It also declares the Source/Loader contracts used to
// fetch documents and the Reader/Writer contracts a document store satisfies.
// The hierarchical engine that operates on these documents lives in pkg/model.
package display
