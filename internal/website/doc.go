// Package website generates a static HTML page for the collection from an
// embedded template. The page needs only title, year, and poster per
// record, all obtainable from a snapshot.
package website
