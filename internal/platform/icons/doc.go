// Package icons defines the closed set of icons the site can draw.
//
// The catalog maps stable icon identifiers to Lucide glyph names (outline
// icons) or brand glyphs (filled icons). Content refers to icons by symbolic
// key; Resolve turns a key into an identifier and falls back to ArrowRight
// when the key is unknown, so a typo in content never breaks a page.
package icons
