package website

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cinelog/internal/library"
)

//go:embed template.html
var pageTemplate string

// DefaultTitle is the heading used when the caller does not supply one.
const DefaultTitle = "My Movie Collection"

type pageData struct {
	Title  string
	Movies []library.Movie
}

// Generate renders the collection snapshot into dir/index.html and returns
// the path of the written file. Movies appear alphabetically; only
// title, year, and poster are used.
func Generate(snapshot library.Snapshot, dir, siteTitle string) (string, error) {
	tmpl, err := template.New("index").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("parse website template: %w", err)
	}

	siteTitle = strings.TrimSpace(siteTitle)
	if siteTitle == "" {
		siteTitle = DefaultTitle
	}
	siteTitle = cases.Title(language.English, cases.NoLower).String(siteTitle)

	movies := make([]library.Movie, 0, len(snapshot))
	for title, attrs := range snapshot {
		movies = append(movies, library.Movie{
			Title:     title,
			Year:      attrs.Year,
			PosterURL: attrs.PosterURL,
		})
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create website directory %q: %w", dir, err)
	}

	target := filepath.Join(dir, "index.html")
	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", target, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, pageData{Title: siteTitle, Movies: movies}); err != nil {
		return "", fmt.Errorf("render website: %w", err)
	}
	return target, nil
}
