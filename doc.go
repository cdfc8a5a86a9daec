// Package posy holds the drawing backends and file plumbing shared by the
// flower poster commands.
//
// A Renderer is the surface flowers are painted on. Context renders vectors
// with tdewolff/canvas and Raster renders pixels with gg; both can write
// themselves to disk through Seed.SafeWrite.
package posy
