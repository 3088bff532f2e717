package catalog

import (
	"fmt"
	"strings"
)

// Detail is the hover/selection projection of a record.
type Detail struct {
	Headline string
	Original string
	Director string
	Duration string
	Genres   string
	Link     string
}

func (r MovieRecord) Detail() Detail {
	d := Detail{
		Headline: fmt.Sprintf("%s (%d)", r.Title, r.ProductionYear),
		Director: strings.Join(r.Directors, ", "),
		Duration: fmt.Sprintf("%d min", r.DurationMinutes),
		Genres:   strings.Join(r.Genres, ", "),
		Link:     r.Link,
	}
	if r.OriginalTitle != "" && r.OriginalTitle != r.Title {
		d.Original = r.OriginalTitle
	}
	return d
}

// Lines renders the detail as labelled rows, skipping empty optional rows.
func (d Detail) Lines() []string {
	lines := []string{d.Headline}
	if d.Original != "" {
		lines = append(lines, "Original: "+d.Original)
	}
	lines = append(lines,
		"Director: "+d.Director,
		"Duration: "+d.Duration,
		"Genres: "+d.Genres,
	)
	if d.Link != "" {
		lines = append(lines, d.Link)
	}
	return lines
}
