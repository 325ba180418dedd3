// Package box provides axis-aligned 2D and 3D boxes built from one
// interval.Interval per axis.
//
// Each axis is half-open, so a box contains its minimum corner and excludes
// its maximum corner. New2/New3 anchor the box at the origin; FromIntervals
// and FromPoints place it anywhere.
package box
