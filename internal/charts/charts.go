package charts

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/sync/errgroup"

	"vacmetrics-engine/internal/analyze"
	"vacmetrics-engine/internal/domain"
)

// Generator renders the three analysis charts as self-contained HTML
// pages in outDir. Each chart is a stateless consumer of the enriched
// records, so they render concurrently.
type Generator struct {
	outDir    string
	topCities int
	topSkills int
}

func New(outDir string, topCities, topSkills int) *Generator {
	if topCities <= 0 {
		topCities = 10
	}
	if topSkills <= 0 {
		topSkills = 15
	}
	return &Generator{outDir: outDir, topCities: topCities, topSkills: topSkills}
}

func (g *Generator) RenderAll(recs []domain.Record) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("create charts dir: %w", err)
	}

	var eg errgroup.Group
	eg.Go(func() error { return g.renderTopCities(recs) })
	eg.Go(func() error { return g.renderSalaryTrend(recs) })
	eg.Go(func() error { return g.renderTopSkills(recs) })
	return eg.Wait()
}

// renderTopCities writes one bar chart per distinct year. Years with no
// rows never appear in the year list, so nothing is skipped explicitly.
func (g *Generator) renderTopCities(recs []domain.Record) error {
	for _, year := range analyze.Years(recs) {
		cities := analyze.TopCitiesForYear(recs, year, g.topCities)
		if len(cities) == 0 {
			continue
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title: fmt.Sprintf("Топ-%d городов по вакансиям в %d году", g.topCities, year),
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: true}),
			charts.WithYAxisOpts(opts.YAxis{Name: "Количество вакансий"}),
		)

		names := make([]string, 0, len(cities))
		data := make([]opts.BarData, 0, len(cities))
		for _, c := range cities {
			names = append(names, c.Name)
			data = append(data, opts.BarData{Value: c.N})
		}
		bar.SetXAxis(names).AddSeries("Вакансии", data)

		name := "top_cities_" + strconv.Itoa(year) + ".html"
		if err := g.write(bar, name); err != nil {
			return err
		}
		log.Printf("[charts] wrote %s (%d cities)", name, len(cities))
	}
	return nil
}

func (g *Generator) renderSalaryTrend(recs []domain.Record) error {
	byYear := analyze.SalaryByYear(recs)
	if len(byYear) == 0 {
		return nil
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Динамика зарплат по годам"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Зарплата (руб)"}),
	)

	years := make([]string, 0, len(byYear))
	mean := make([]opts.LineData, 0, len(byYear))
	median := make([]opts.LineData, 0, len(byYear))
	for _, ys := range byYear {
		years = append(years, strconv.Itoa(ys.Year))
		mean = append(mean, opts.LineData{Value: ys.Mean.Round(2).InexactFloat64()})
		median = append(median, opts.LineData{Value: ys.Median.Round(2).InexactFloat64()})
	}

	markers := charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true})
	line.SetXAxis(years).
		AddSeries("Средняя зарплата", mean, markers).
		AddSeries("Медианная зарплата", median, markers)

	if err := g.write(line, "salary_trend.html"); err != nil {
		return err
	}
	log.Printf("[charts] wrote salary_trend.html (%d years)", len(byYear))
	return nil
}

func (g *Generator) renderTopSkills(recs []domain.Record) error {
	skills := analyze.TopSkills(recs, g.topSkills)
	if len(skills) == 0 {
		return nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Топ-%d ключевых навыков", g.topSkills),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	// horizontal bars put the first category at the bottom, so feed the
	// list in ascending order to keep the most frequent skill on top
	names := make([]string, 0, len(skills))
	data := make([]opts.BarData, 0, len(skills))
	for i := len(skills) - 1; i >= 0; i-- {
		names = append(names, skills[i].Name)
		data = append(data, opts.BarData{Value: skills[i].N})
	}
	bar.SetXAxis(names).AddSeries("Количество упоминаний", data)
	bar.XYReversal()

	if err := g.write(bar, "top_skills.html"); err != nil {
		return err
	}
	log.Printf("[charts] wrote top_skills.html (%d skills)", len(skills))
	return nil
}

type renderer interface {
	Render(w io.Writer) error
}

func (g *Generator) write(c renderer, name string) error {
	path := filepath.Join(g.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()
	if err := c.Render(f); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
