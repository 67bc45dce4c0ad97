package model_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotokei/internal/languages"
	"gotokei/internal/model"
)

func stats(code, comments, blanks int) model.CodeStats {
	s := model.NewCodeStats()
	s.Code, s.Comments, s.Blanks = code, comments, blanks
	return s
}

func report(name string, code, comments, blanks int) model.Report {
	r := model.NewReport(name)
	r.Stats = stats(code, comments, blanks)
	return r
}

func TestCodeStatsSummarise(t *testing.T) {
	inner := stats(1, 1, 0)
	script := stats(4, 1, 0)
	script.Blobs[languages.Json] = inner

	s := stats(6, 0, 1)
	s.Blobs[languages.JavaScript] = script
	s.Blobs[languages.Css] = stats(2, 0, 1)

	summary := s.Summarise()
	assert.Empty(t, summary.Blobs)
	assert.Equal(t, 7, s.Lines(), "lines excludes nested blobs")
	assert.Equal(t, s.Lines()+script.Summarise().Lines()+3, summary.Lines())
	assert.Equal(t, 13, summary.Code)
	assert.True(t, summary.Equal(summary.Summarise()), "summarise is idempotent")
	assert.Len(t, s.Blobs, 2, "summarise does not mutate the receiver")
}

func TestCodeStatsAddMergesBlobs(t *testing.T) {
	a := stats(1, 0, 0)
	a.AddBlob(languages.JavaScript, stats(2, 0, 0))
	b := stats(1, 1, 1)
	b.AddBlob(languages.JavaScript, stats(3, 1, 0))

	a.Add(b)
	assert.Equal(t, 2, a.Code)
	assert.Equal(t, 5, a.Blobs[languages.JavaScript].Code)
	assert.Equal(t, 1, a.Blobs[languages.JavaScript].Comments)
}

func TestLanguageTotalScenario(t *testing.T) {
	lang := model.NewLanguage()
	lang.AddReport(report("a.go", 10, 2, 1))
	lang.AddReport(report("b.go", 5, 0, 0))
	lang.AddReport(report("c.go", 0, 3, 4))

	total := lang.Total()
	assert.Equal(t, 15, total.Code)
	assert.Equal(t, 5, total.Comments)
	assert.Equal(t, 5, total.Blanks)
	assert.Equal(t, 25, total.Lines())
	assert.Equal(t, 3, total.Files())
	require.Len(t, total.Reports, 1)
	assert.Equal(t, 15, total.Reports[0].Stats.Code)
	assert.False(t, total.IsEmpty())
}

func TestLanguageChildrenAreNotDoubleCounted(t *testing.T) {
	page := report("index.html", 6, 0, 1)
	page.Stats.Blobs[languages.JavaScript] = stats(4, 1, 0)

	lang := model.NewLanguage()
	lang.AddReport(page)

	assert.Equal(t, 6, lang.Code)
	assert.Equal(t, 0, lang.Comments)
	require.Len(t, lang.Children[languages.JavaScript], 1)
	child := lang.Children[languages.JavaScript][0]
	assert.Equal(t, "index.html", child.Name)
	assert.Equal(t, 4, child.Stats.Code)
	assert.Equal(t, 1, child.Stats.Comments)
	assert.Equal(t, 0, child.Stats.Blanks)

	totals := lang.ChildTotals()
	assert.Equal(t, 4, totals[languages.JavaScript].Code)
	assert.Equal(t, 6, lang.Code, "reading children leaves totals unchanged")
}

func TestLanguageAddReportOrderIndependent(t *testing.T) {
	reports := []model.Report{
		report("a", 10, 2, 1),
		report("b", 5, 0, 0),
		report("c", 0, 3, 4),
	}
	permutations := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	var want *model.Language
	for _, order := range permutations {
		lang := model.NewLanguage()
		for _, i := range order {
			lang.AddReport(reports[i])
		}
		total := lang.Total()
		if want == nil {
			want = total
			continue
		}
		assert.Equal(t, want.Code, total.Code)
		assert.Equal(t, want.Comments, total.Comments)
		assert.Equal(t, want.Blanks, total.Blanks)
		assert.Equal(t, want.Files(), total.Files())
	}
}

func TestLanguageInaccurateIsMonotone(t *testing.T) {
	lang := model.NewLanguage()
	bad := report("bad.rs", 1, 0, 0)
	bad.Inaccurate = true

	lang.AddReport(bad)
	lang.AddReport(report("good.rs", 1, 0, 0))
	assert.True(t, lang.Inaccurate)

	merged := model.NewLanguage()
	merged.Merge(lang)
	merged.Merge(model.NewLanguage())
	assert.True(t, merged.Inaccurate)

	marked := model.NewLanguage()
	assert.False(t, marked.Inaccurate)
	marked.MarkInaccurate()
	marked.AddReport(report("ok.rs", 1, 0, 0))
	assert.True(t, marked.Inaccurate)
	assert.True(t, marked.Total().Inaccurate)
}

func TestLanguageEmpty(t *testing.T) {
	lang := model.NewLanguage()
	assert.True(t, lang.IsEmpty())
	assert.True(t, lang.Total().IsEmpty())
	assert.Zero(t, lang.Lines())
}

// TestLanguageFilesSurviveDecoding 验证解码或直接构造的聚合仍满足 files 等于报告数。
func TestLanguageFilesSurviveDecoding(t *testing.T) {
	page := report("index.html", 6, 0, 1)
	page.Stats.Blobs[languages.JavaScript] = stats(4, 1, 0)

	lang := model.NewLanguage()
	lang.AddReport(page)
	lang.AddReport(report("about.html", 2, 0, 0))

	encoded, err := json.Marshal(lang)
	require.NoError(t, err)

	var decoded model.Language
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, 2, decoded.Files())
	assert.Equal(t, lang.Code, decoded.Code)
	require.Len(t, decoded.Children[languages.JavaScript], 1)
	assert.Equal(t, 4, decoded.Children[languages.JavaScript][0].Stats.Code)

	var withoutFiles model.Language
	require.NoError(t, json.Unmarshal([]byte(`{"code":3,"reports":[{"name":"a.go","stats":{"code":3}}]}`), &withoutFiles))
	assert.Equal(t, 1, withoutFiles.Files())

	built := &model.Language{Code: 1, Reports: []model.Report{report("a.go", 1, 0, 0)}}
	assert.Equal(t, 1, built.Files())
	assert.Equal(t, 1, built.Total().Files())

	merged := model.NewLanguage()
	merged.Merge(built)
	merged.Merge(&decoded)
	assert.Equal(t, 3, merged.Files())
}

func TestLanguageSortBy(t *testing.T) {
	lang := model.NewLanguage()
	lang.AddReport(report("b.go", 1, 9, 0))
	lang.AddReport(report("a.go", 5, 0, 0))
	lang.AddReport(report("c.go", 5, 1, 0))

	lang.SortBy(model.SortCode)
	assert.Equal(t, []string{"a.go", "c.go", "b.go"}, reportNames(lang), "ties keep insertion order")

	lang.SortBy(model.SortComments)
	assert.Equal(t, []string{"b.go", "c.go", "a.go"}, reportNames(lang))

	lang.SortBy(model.SortFiles)
	assert.Equal(t, []string{"a.go", "b.go", "c.go"}, reportNames(lang))
}

// TestLanguageSortByLinesAndBlanks 验证 Lines 按总行数降序，与 Code 顺序不同。
func TestLanguageSortByLinesAndBlanks(t *testing.T) {
	lang := model.NewLanguage()
	lang.AddReport(report("big-code.go", 5, 0, 0))
	lang.AddReport(report("commented.go", 1, 9, 0))
	lang.AddReport(report("spaced.go", 2, 0, 7))

	lines, err := model.ParseSort("Lines")
	require.NoError(t, err)

	lang.SortBy(lines)
	assert.Equal(t, []string{"commented.go", "spaced.go", "big-code.go"}, reportNames(lang))

	lang.SortBy(model.SortCode)
	assert.Equal(t, []string{"big-code.go", "spaced.go", "commented.go"}, reportNames(lang))

	lang.SortBy(model.SortBlanks)
	assert.Equal(t, []string{"spaced.go", "big-code.go", "commented.go"}, reportNames(lang))
}

func reportNames(lang *model.Language) []string {
	names := make([]string, 0, len(lang.Reports))
	for _, r := range lang.Reports {
		names = append(names, r.Name)
	}
	return names
}

func TestParseSort(t *testing.T) {
	for _, name := range []string{"Lines", "lines", " LINES "} {
		got, err := model.ParseSort(name)
		require.NoError(t, err)
		assert.Equal(t, model.SortLines, got)
	}

	_, err := model.ParseSort("bogus")
	require.ErrorIs(t, err, model.ErrUnknownSortCategory)
	assert.Contains(t, err.Error(), "bogus")

	var s model.Sort
	require.NoError(t, s.UnmarshalText([]byte("code")))
	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Code", string(text))
}

func TestLanguagesTotalEmpty(t *testing.T) {
	langs := model.NewLanguages()
	total := langs.Total()
	assert.Zero(t, total.Code)
	assert.Zero(t, total.Comments)
	assert.Zero(t, total.Blanks)
	assert.Zero(t, total.Files())
	assert.Empty(t, langs.LanguageNames())
}

func TestLanguagesGetNotFound(t *testing.T) {
	langs := model.NewLanguages()
	langs.AddReport(languages.Go, report("main.go", 1, 0, 0))

	lang, err := langs.Get(languages.Go)
	require.NoError(t, err)
	assert.Equal(t, 1, lang.Code)

	_, err = langs.Get(languages.Rust)
	require.ErrorIs(t, err, model.ErrLanguageTypeNotFound)
	assert.Contains(t, err.Error(), "Rust")
}

func TestLanguagesTotalAndMerge(t *testing.T) {
	left := model.NewLanguages()
	left.AddReport(languages.Go, report("a.go", 10, 2, 1))
	left.AddReport(languages.Python, report("a.py", 3, 1, 0))

	right := model.NewLanguages()
	right.AddReport(languages.Go, report("b.go", 5, 0, 0))
	page := report("index.html", 6, 0, 1)
	page.Stats.Blobs[languages.JavaScript] = stats(4, 1, 0)
	right.AddReport(languages.Html, page)

	left.Merge(right)
	assert.Equal(t, []string{"Go", "HTML", "Python"}, left.LanguageNames())

	total := left.Total()
	assert.Equal(t, 24, total.Code, "embedded script excluded from the grand total")
	assert.Equal(t, 4, total.Files())
	assert.Equal(t, map[string]int{"Go": 2, "HTML": 1, "Python": 1}, left.Files())
	assert.Equal(t, 4, total.ChildTotals()[languages.JavaScript].Code)
}

func TestLanguagesMergeMatchesSequentialFold(t *testing.T) {
	all := []struct {
		lang languages.LanguageType
		r    model.Report
	}{
		{languages.Go, report("a.go", 3, 1, 0)},
		{languages.Go, report("b.go", 7, 0, 2)},
		{languages.Rust, report("lib.rs", 4, 4, 4)},
		{languages.Python, report("x.py", 1, 0, 0)},
	}

	sequential := model.NewLanguages()
	for _, item := range all {
		sequential.AddReport(item.lang, item.r)
	}

	first, second := model.NewLanguages(), model.NewLanguages()
	for i, item := range all {
		if i%2 == 0 {
			first.AddReport(item.lang, item.r)
		} else {
			second.AddReport(item.lang, item.r)
		}
	}
	reduced := model.NewLanguages()
	reduced.Merge(second)
	reduced.Merge(first)

	assert.Equal(t, sequential.TotalPlain(), reduced.TotalPlain())
	assert.Equal(t, sequential.LanguagesPlain(), reduced.LanguagesPlain())
}

func TestLanguagesSorted(t *testing.T) {
	langs := model.NewLanguages()
	langs.AddReport(languages.Go, report("a.go", 10, 0, 0))
	langs.AddReport(languages.Python, report("a.py", 10, 0, 0))
	langs.AddReport(languages.Python, report("b.py", 0, 0, 1))
	langs.AddReport(languages.Rust, report("a.rs", 20, 0, 0))

	byCode := langs.Sorted(model.SortCode)
	require.Len(t, byCode, 3)
	assert.Equal(t, languages.Rust, byCode[0].Type)
	assert.Equal(t, languages.Go, byCode[1].Type, "ties ordered by name")
	assert.Equal(t, languages.Python, byCode[2].Type)

	byFiles := langs.Sorted(model.SortFiles)
	assert.Equal(t, languages.Python, byFiles[0].Type)
}

func TestLanguagesSortedByLinesAndBlanks(t *testing.T) {
	langs := model.NewLanguages()
	langs.AddReport(languages.Go, report("a.go", 8, 0, 0))
	langs.AddReport(languages.Python, report("a.py", 1, 9, 0))
	langs.AddReport(languages.Rust, report("a.rs", 2, 0, 3))

	byLines := langs.Sorted(model.SortLines)
	assert.Equal(t, []languages.LanguageType{languages.Python, languages.Go, languages.Rust}, entryTypes(byLines))

	byCode := langs.Sorted(model.SortCode)
	assert.Equal(t, []languages.LanguageType{languages.Go, languages.Rust, languages.Python}, entryTypes(byCode))

	byBlanks := langs.Sorted(model.SortBlanks)
	assert.Equal(t, []languages.LanguageType{languages.Rust, languages.Go, languages.Python}, entryTypes(byBlanks), "ties ordered by name")
}

func entryTypes(entries []model.LanguageEntry) []languages.LanguageType {
	types := make([]languages.LanguageType, 0, len(entries))
	for _, entry := range entries {
		types = append(types, entry.Type)
	}
	return types
}

type stubCollector struct {
	result *model.Languages
	err    error
}

func (c stubCollector) Collect(context.Context, []string, []string) (*model.Languages, error) {
	return c.result, c.err
}

func TestGetStatistics(t *testing.T) {
	partial := model.NewLanguages()
	partial.AddReport(languages.Go, report("a.go", 2, 0, 0))

	langs := model.NewLanguages()
	require.NoError(t, langs.GetStatistics(context.Background(), stubCollector{result: partial}, []string{"."}, nil))
	assert.Equal(t, 2, langs.Total().Code)

	empty := model.NewLanguages()
	require.NoError(t, empty.GetStatistics(context.Background(), stubCollector{result: model.NewLanguages()}, []string{"."}, nil))
	assert.Zero(t, empty.Len())

	failing := errors.New("walk aborted")
	withErr := model.NewLanguages()
	err := withErr.GetStatistics(context.Background(), stubCollector{result: partial, err: failing}, []string{"."}, nil)
	require.ErrorIs(t, err, failing)
	assert.Equal(t, 2, withErr.Total().Code, "partial results are kept")
}

func TestPlainProjections(t *testing.T) {
	langs := model.NewLanguages()
	langs.AddReport(languages.Go, report("a.go", 3, 1, 2))

	assert.Equal(t, map[string]int{"files": 1, "lines": 6, "code": 3, "comments": 1, "blanks": 2}, langs.TotalPlain())
	assert.Equal(t, model.PlainStats{Lines: 6, Code: 3, Comments: 1, Blanks: 2}, langs.ReportCompactPlain()["Go"]["a.go"])

	encoded, err := json.Marshal(langs)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.EqualValues(t, 1, decoded["Go"]["files"])
	assert.EqualValues(t, 6, decoded["Go"]["lines"])
}
