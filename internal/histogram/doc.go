// Package histogram renders the rating distribution of a snapshot as a
// terminal bar chart.
package histogram
