// Package models contains GORM database models for the infrastructure layer.
// These models handle database persistence and are separated from the
// domain entities; each converts with ToDomain and FromDomain.
package models
