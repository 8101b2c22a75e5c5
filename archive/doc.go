// Package archive provides [frontdesk.Archive] implementations for the
// attendance history: a flat file in the legacy fixed-width record layout and
// a Postgres table managed through gorm.
package archive
