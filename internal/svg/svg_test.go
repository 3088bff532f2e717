package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/chart"
	"github.com/janekbaraniewski/screenings/internal/layout"
)

func testChart() *chart.Chart {
	records := catalog.Normalize([]catalog.RawRecord{
		{ID: catalog.F("a"), Title: catalog.F("Sürü & Yol"), When: catalog.F("01/2023"), YearProduction: catalog.F("1978"),
			Duration: catalog.F("90"), Languages: catalog.F("Turkish"), Genres: catalog.F("Drama")},
		{ID: catalog.F("b"), Title: catalog.F("Umut"), When: catalog.F("01/2023"), YearProduction: catalog.F("1970"),
			Duration: catalog.F("100"), Languages: catalog.F("Turkish"), Genres: catalog.F("Crime")},
		{ID: catalog.F("c"), Title: catalog.F("Undated"), YearProduction: catalog.F("1999")},
	})
	return chart.Build(records, chart.Options{Layout: layout.DefaultConfig()})
}

func TestRenderIsWellFormed(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testChart()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	dec := xml.NewDecoder(&buf)
	circles := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "circle" {
			circles++
		}
	}
	if circles != 2 {
		t.Fatalf("circles = %d, want 2 (undated record skipped)", circles)
	}
}

func TestRenderReflectsFilter(t *testing.T) {
	c := testChart()
	c.Toggle(catalog.AxisGenre, "Crime")

	var buf bytes.Buffer
	if err := Render(&buf, c); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `data-id="a" cx="70" cy="577.33" r="14.23" fill="#BDB76B" opacity="0.1" pointer-events="none">`) {
		t.Errorf("dimmed mark not rendered as expected:\n%s", out)
	}
	if !strings.Contains(out, `data-id="b" cx="75"`) {
		t.Errorf("fanned-out mark missing:\n%s", out)
	}
	if !strings.Contains(out, `font-weight="bold">Crime (1)</text>`) {
		t.Errorf("active facet not highlighted:\n%s", out)
	}
	if !strings.Contains(out, `Turkish (2)`) {
		t.Errorf("language facet missing:\n%s", out)
	}
	if !strings.Contains(out, "Production Year") {
		t.Error("y axis label missing")
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		70:      "70",
		14.2302: "14.23",
		0.1:     "0.1",
		-3.5:    "-3.5",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}
