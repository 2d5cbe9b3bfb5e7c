// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princessdata/princess/base/errors"
	"github.com/princessdata/princess/config"
	"github.com/princessdata/princess/dataset"
	"github.com/princessdata/princess/plot"
	"github.com/princessdata/princess/plot/plots"
	"github.com/princessdata/princess/stats"
)

const exampleCSV = `PrincessName,PopularityScore,HairColor,EyeColor,IsIconic,TikTokHashtagViewsMillions,BoxOfficeMillions
Aria,90,Red,Blue,Yes,12.0,300.0
Bea,70,Red,Green,No,,150.0
`

// newTestAnalyzer returns an analyzer for the given file that writes
// charts to a temporary directory and prints to the returned buffer.
func newTestAnalyzer(t *testing.T, path string) (*Analyzer, *bytes.Buffer) {
	cfg := config.New()
	cfg.Input = path
	cfg.OutputDir = filepath.Join(t.TempDir(), "graphs")
	an, err := NewFromConfig(cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	an.Out = &out
	return an, &out
}

func writeCSV(t *testing.T, content string) string {
	fn := filepath.Join(t.TempDir(), "princesses.csv")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func rowNames(rows []dataset.Row) []string {
	nms := make([]string, len(rows))
	for i, r := range rows {
		nms[i] = r.Name
	}
	return nms
}

func TestExample(t *testing.T) {
	an, out := newTestAnalyzer(t, writeCSV(t, exampleCSV))
	require.Equal(t, 2, an.Table.NumRows())

	assert.Equal(t, []string{"Aria"}, rowNames(an.FilterIconic()))

	gps := an.GroupByHairColor()
	assert.Equal(t, []stats.Group{{Name: "Red", Count: 2, Mean: 80}}, gps)
	assert.Equal(t, "Average popularity by hair color:\n"+
		"   HairColor  PopularityScore\n"+
		"0  Red        80.000000\n", out.String())

	require.NoError(t, an.PlotTikTokViewsDistribution())
	vals := an.Table.View().Floats(func(r dataset.Row) dataset.Float { return r.TikTokViews })
	assert.Equal(t, []float64{12}, vals, "the missing view count is excluded")
	assert.Equal(t, 1, plots.NewHistogram(plot.Values(vals), an.Config.Bins).Total(), "only Aria is counted")
}

func TestNew(t *testing.T) {
	an, err := New(filepath.Join("testdata", "princesses.csv"))
	require.NoError(t, err)
	assert.Equal(t, 8, an.Table.NumRows(), "Fia has no popularity")
	assert.Equal(t, 1, an.Table.Dropped())
	assert.Equal(t, "graphs", an.Config.OutputDir)
	for _, r := range an.Table.Rows() {
		assert.NotEmpty(t, r.Name)
	}
}

func TestConstructionErrors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.csv"))
	var le *dataset.LoadError
	require.True(t, errors.As(err, &le))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = New(writeCSV(t, "PrincessName,HairColor\nAria,Red\n"))
	var se *dataset.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{"PopularityScore", "EyeColor", "IsIconic", "TikTokHashtagViewsMillions", "BoxOfficeMillions"}, se.Missing)

	cfg := config.New()
	cfg.Input = writeCSV(t, exampleCSV)
	cfg.Delimiter = "pipe"
	_, err = NewFromConfig(cfg)
	assert.Error(t, err)
}

func TestFilterIconic(t *testing.T) {
	an, _ := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
	iconic := an.FilterIconic()
	assert.Equal(t, []string{"Aria", "Cora", "Dina", "Hana"}, rowNames(iconic), "lowercase yes is not iconic")
	all := an.Table.Rows()
	for _, r := range iconic {
		assert.Equal(t, "Yes", r.Iconic)
		assert.Contains(t, all, r)
	}
}

func TestGroupByHairColor(t *testing.T) {
	an, out := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
	gps := an.GroupByHairColor()
	// Blonde (95+82)/2 = 88.5, Brown 93, Black (88+79+85)/3 = 84, Red 80
	assert.Equal(t, []stats.Group{
		{Name: "Brown", Count: 1, Mean: 93},
		{Name: "Blonde", Count: 2, Mean: 88.5},
		{Name: "Black", Count: 3, Mean: 84},
		{Name: "Red", Count: 2, Mean: 80},
	}, gps)
	for i := 1; i < len(gps); i++ {
		assert.GreaterOrEqual(t, gps[i-1].Mean, gps[i].Mean)
	}

	first := out.String()
	out.Reset()
	an.GroupByHairColor()
	assert.Equal(t, first, out.String(), "printed output is deterministic")
	assert.Contains(t, first, "1  Blonde     88.500000\n")
}

func TestTopPopular(t *testing.T) {
	an, _ := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
	assert.Equal(t, []string{"Cora", "Hana", "Aria", "Dina", "Iris"}, rowNames(an.TopPopular(5)))

	small, _ := newTestAnalyzer(t, writeCSV(t, exampleCSV+"Cora,95,Black,Brown,No,1,2\n"))
	assert.Equal(t, []string{"Cora", "Aria", "Bea"}, rowNames(small.TopPopular(5)))
	require.NoError(t, small.PlotTop5Popular())

	f, err := os.Open(small.ChartPath(Top5Chart))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestTopPopularTies(t *testing.T) {
	an, _ := newTestAnalyzer(t, writeCSV(t, `PrincessName,PopularityScore,HairColor,EyeColor,IsIconic,TikTokHashtagViewsMillions,BoxOfficeMillions
Aria,80,Red,Blue,Yes,1,1
Bea,90,Red,Green,No,1,1
Cora,80,Black,Brown,No,1,1
Dina,70,Black,Brown,No,1,1
Elle,80,Blonde,Blue,No,1,1
Fia,90,Brown,Hazel,No,1,1
Gwen,80,Brown,Hazel,No,1,1
`))
	assert.Equal(t, []string{"Bea", "Fia", "Aria", "Cora", "Elle"}, rowNames(an.TopPopular(5)), "equal scores keep source order")
	assert.Equal(t, []string{"Bea", "Fia", "Aria"}, rowNames(an.TopPopular(3)))
}

func TestEyeColors(t *testing.T) {
	an, _ := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
	assert.Equal(t, []string{"Blue", "Brown", "Green", "Hazel"}, an.EyeColors())
}

func TestGenerateAllPlots(t *testing.T) {
	an, _ := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
	require.NoError(t, an.GenerateAllPlots())
	for _, ch := range []string{Top5Chart, TikTokChart, BoxOfficeChart} {
		fn := filepath.Join(an.Config.OutputDir, ch+".png")
		st, err := os.Stat(fn)
		require.NoError(t, err, ch)
		assert.Positive(t, st.Size())
	}
}

func TestGenerateAllPlotsExtremeValues(t *testing.T) {
	an, _ := newTestAnalyzer(t, writeCSV(t, `PrincessName,PopularityScore,HairColor,EyeColor,IsIconic,TikTokHashtagViewsMillions,BoxOfficeMillions
Aria,90,Red,Blue,Yes,1e39,1e308
Bea,70,Red,Green,No,-1e308,-1e308
Cora,95,Black,Blue,No,1e308,1e39
`))
	require.NoError(t, an.GenerateAllPlots())
	for _, ch := range []string{Top5Chart, TikTokChart, BoxOfficeChart} {
		st, err := os.Stat(an.ChartPath(ch))
		require.NoError(t, err, ch)
		assert.Positive(t, st.Size())
	}

	single, _ := newTestAnalyzer(t, writeCSV(t, `PrincessName,PopularityScore,HairColor,EyeColor,IsIconic,TikTokHashtagViewsMillions,BoxOfficeMillions
Aria,90,Red,Blue,Yes,1e39,1e39
`))
	require.NoError(t, single.GenerateAllPlots())
}

func TestGenerateAllPlotsTooSmall(t *testing.T) {
	an, _ := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
	an.Config.Width, an.Config.Height = 40, 40
	err := an.GenerateAllPlots()
	require.Error(t, err)
	assert.ErrorContains(t, err, "too small")
	for _, ch := range []string{Top5Chart, TikTokChart, BoxOfficeChart} {
		assert.Contains(t, err.Error(), ch)
		_, serr := os.Stat(an.ChartPath(ch))
		assert.True(t, os.IsNotExist(serr), "no file is written for %s", ch)
	}
}

func TestSVGDeterministic(t *testing.T) {
	render := func() map[string][]byte {
		an, _ := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
		an.Config.Format = "svg"
		require.NoError(t, an.GenerateAllPlots())
		files := map[string][]byte{}
		for _, ch := range []string{Top5Chart, TikTokChart, BoxOfficeChart} {
			b, err := os.ReadFile(an.ChartPath(ch))
			require.NoError(t, err)
			files[ch] = b
		}
		return files
	}
	first := render()
	assert.Equal(t, first, render())

	top5 := string(first[Top5Chart])
	assert.Contains(t, top5, ">Top 5 Princesses by Popularity<")
	assert.Less(t, strings.Index(top5, ">Cora<"), strings.Index(top5, ">Iris<"), "labels are drawn top down")
	box := string(first[BoxOfficeChart])
	assert.Contains(t, box, ">Box Office Revenue by Eye Color<")
	assert.Contains(t, box, ">Revenue (in millions)<")
	assert.Contains(t, box, "rotate(-45.00")
	hist := string(first[TikTokChart])
	assert.Contains(t, hist, ">Number of princesses<")
}

func TestEmptyHistogram(t *testing.T) {
	an, _ := newTestAnalyzer(t, writeCSV(t, `PrincessName,PopularityScore,HairColor,EyeColor,IsIconic,TikTokHashtagViewsMillions,BoxOfficeMillions
Aria,90,Red,Blue,Yes,,300.0
Bea,70,Red,Green,No,lots,
`))
	require.NoError(t, an.PlotTikTokViewsDistribution())
	_, err := os.Stat(an.ChartPath(TikTokChart))
	assert.NoError(t, err)
	require.NoError(t, an.PlotBoxOfficeByEyeColor(), "an eye color without revenue draws no box")
}

func TestGenerateAllPlotsIsolation(t *testing.T) {
	an, _ := newTestAnalyzer(t, filepath.Join("testdata", "princesses.csv"))
	// a file where the output directory should be
	blocker := filepath.Join(t.TempDir(), "graphs")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	an.Config.OutputDir = blocker

	err := an.GenerateAllPlots()
	require.Error(t, err)
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, Top5Chart, re.Chart)
	for _, ch := range []string{Top5Chart, TikTokChart, BoxOfficeChart} {
		assert.Contains(t, err.Error(), ch, "every chart is attempted")
	}

	an.Config.OutputDir = filepath.Join(t.TempDir(), "out")
	an.Config.BarColor = "not-a-color"
	err = an.GenerateAllPlots()
	require.Error(t, err)
	assert.Contains(t, err.Error(), Top5Chart)
	assert.NotContains(t, err.Error(), TikTokChart)
	_, err = os.Stat(an.ChartPath(BoxOfficeChart))
	assert.NoError(t, err, "later charts are still written")
}

func TestRenderRecoversPanic(t *testing.T) {
	an, _ := newTestAnalyzer(t, writeCSV(t, exampleCSV))
	err := an.render("broken", func(pt *plot.Plot) error {
		var vals []float64
		_ = vals[3]
		return nil
	})
	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "broken", re.Chart)
	assert.Contains(t, re.Error(), "panic")
	_, serr := os.Stat(re.Path)
	assert.True(t, os.IsNotExist(serr))
}

func TestDescribe(t *testing.T) {
	an, out := newTestAnalyzer(t, writeCSV(t, exampleCSV))
	ds := an.Describe()
	require.Len(t, ds, 3)
	assert.Equal(t, dataset.PopularityColumn, ds[0].Name)
	assert.Equal(t, 80.0, ds[0].Get(stats.Mean))
	assert.Equal(t, 1.0, ds[1].Get(stats.Count))
	assert.Equal(t, 225.0, ds[2].Get(stats.Mean))
	s := out.String()
	assert.Contains(t, s, dataset.TikTokViewsColumn)
	assert.Contains(t, s, "80.000000")
	assert.Equal(t, len(stats.DescriptiveStats)+1, strings.Count(s, "\n"))
}
