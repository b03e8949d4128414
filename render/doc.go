// Package render draws a carved grid as a grayscale raster, a PNG file or
// ASCII art.
//
// Layout of the raster at scale 1: a 15px white margin on every side, 15px
// cells, 3px black wall strokes. A W×H maze is therefore
// 30 + 18·W + 3 pixels wide and 30 + 18·H + 3 pixels tall. WithScale resizes
// the finished raster.
//
// Errors:
//
//   - ErrExists: SaveFile refuses to overwrite an existing file.
package render
