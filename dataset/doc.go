// Package dataset holds small in-memory tables of string records and reads
// them from delimited text.
//
// A Frame is the raw material for the correspondence-analysis engine: its
// columns are either categorical variables (handed to package dummy for
// indicator encoding) or already numeric counts (converted with Numeric).
//
// Frames are values built once and never mutated; Select and Drop return new
// frames sharing no slices with the receiver.
package dataset
