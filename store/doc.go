// Package store persists distance matrices.
//
//	WriteNPY / ReadNPY  – NumPy .npy (float64, C order) through npyio and gonum
//	WriteCSV            – labelled CSV, one row per test graph
//	SQLite              – run history: one row per run, one row per cell
//
// NaN cells (isolated failures) are written as NaN in .npy/CSV and as NULL in
// SQLite, and read back as NaN.
package store
