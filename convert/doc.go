// Package convert exports parsed trees to general-purpose data formats.
//
// JSON and YAML output keep entries in source order. TOML output follows the
// encoder's own ordering, with plain keys before tables.
package convert
