// Package toolkits defines the release-side reference data of ETREE:
// releases, tool kits and their stages, components and component types,
// the component versions bound to a tool kit, platforms and release
// packages, together with the repository and service contracts over them.
package toolkits
