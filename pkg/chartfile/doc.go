// Package chartfile reads and writes declarative chart descriptions and
// builds [plot.Model] values from them.
//
// # Format
//
// Chart files are TOML or JSON. Both use the same keys:
//
//	title = "Response time"
//	width = 800
//	height = 500
//
//	[[axes]]
//	key = "t"
//	kind = "linear"
//	position = "bottom"
//	title = "Time"
//	unit = "s"
//
//	[[series]]
//	kind = "line"
//	title = "p99"
//	points = [[0, 12], [1, 15], [2, 11]]
//
//	[[annotations]]
//	kind = "line"
//	orientation = "horizontal"
//	value = 14
//	text = "SLO"
//
// Axis kinds are linear, log, category, angle and magnitude; series kinds
// are line, scatter and area; annotation kinds are line, rect and text.
// Colors accept "#rrggbb", "#rrggbbaa" and CSS names.
//
// When a chart declares series but no axes, [Build] adds a linear bottom
// axis keyed "x" and a linear left axis keyed "y" (an angle and a
// magnitude axis for polar charts).
//
// # Reading and writing
//
// Use [Read] or [Import] to decode and [Write] or [Export] to encode. The
// format follows the file extension (.toml, .json); [Sniff] guesses it from
// content when there is no extension.
package chartfile
