package models

// RecordSource streams document records into the catalog importer.
type RecordSource interface {
	Name() string
	Records() <-chan DocumentRecord
}
