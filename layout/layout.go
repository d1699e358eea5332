// Package layout selects the annotation file format variant of a corpus release.
package layout

import (
	"path/filepath"
	"strings"
)

// legacySentenceVersion is the sentence file suffix shipped with the 3.0 release,
// which did not re-segment the documents.
const legacySentenceVersion = "2.0"

// Layout describes where things live in the annotation files of one corpus version.
type Layout struct {
	Version string

	// TypeColumn is the row field holding the annotation kind.
	TypeColumn int

	// PropertiesColumn is the row field holding the key=value property blob.
	// Rows with no field at this position have no properties.
	PropertiesColumn int

	SentenceSuffix   string
	AnnotationSuffix string
}

// For returns the layout of the given corpus version.
func For(version string) Layout {
	if version == "3.0" {
		return Layout{
			Version:          version,
			TypeColumn:       2,
			PropertiesColumn: 3,
			SentenceSuffix:   legacySentenceVersion,
			AnnotationSuffix: version,
		}
	}

	return Layout{
		Version:          version,
		TypeColumn:       3,
		PropertiesColumn: 4,
		SentenceSuffix:   version,
		AnnotationSuffix: version,
	}
}

// Version derives the version tag from the last three characters of a corpus
// root path, e.g. "/data/database.mpqa.2.0" is "2.0". Trailing separators are
// ignored.
func Version(root string) string {
	root = strings.TrimRight(filepath.ToSlash(root), "/")
	if len(root) < 3 {
		return root
	}
	return root[len(root)-3:]
}

// SentenceFile is the sentence annotation file name, e.g. "gatesentences.mpqa.2.0".
func (l Layout) SentenceFile() string {
	return "gatesentences.mpqa." + l.SentenceSuffix
}

// AnnotationFile is the opinion annotation file name, e.g. "gateman.mpqa.lre.2.0".
func (l Layout) AnnotationFile() string {
	return "gateman.mpqa.lre." + l.AnnotationSuffix
}
