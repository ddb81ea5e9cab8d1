// Package persistence provides the GORM repository implementations of the
// ETREE domain contracts. Repositories are built from a *gorm.DB handle,
// which in the command-line suite is always the transaction of the current
// invocation. Driver errors are translated into apperr codes here so that
// callers only ever see domain errors.
package persistence
