// Package lookup implements the OMDb metadata client used to enrich
// titles before they are inserted into the collection.
//
// The client depends only on the tri-state result shape the store
// consumes: a tagged found/not-found Resolution, with transport failures
// returned as errors classified under library.ErrTransport.
package lookup
