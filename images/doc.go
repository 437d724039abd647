// Package images renders pre-encoded raster images (PNG/JPEG bytes, caller
// supplied) as inline terminal graphics: Kitty's APC transmission protocol,
// iTerm2's OSC 1337 alternative, and a text placeholder for terminals that
// support neither. It does no image decoding or resizing; callers convert
// pixel dimensions to terminal cells with CellSize before choosing a
// display width.
package images
