// Command cinelog manages a personal movie collection from the terminal:
// adding titles with OMDb enrichment, rating, deleting, fuzzy search,
// sorting, filtering, statistics, a rating histogram, and static website
// generation.
package main
