// Package annotations provides reference lines, shaded rectangles and text
// placed in data coordinates.
//
// Annotations default to the layer above the series. Like series they pick
// their axes by key and fall back to the model's default axes.
package annotations
