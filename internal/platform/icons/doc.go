// Package icons defines the icon identifiers used by the clearance web shell.
//
// The catalog maps stable icon identifiers to labels and outline glyph paths
// so that views can reference icons by intent rather than by markup.
package icons
