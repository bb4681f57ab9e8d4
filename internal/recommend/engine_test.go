// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/catalog"
	"github.com/tomtom215/moodflix/internal/recommend/filter"
)

// threeItemCatalog is the small catalog used by the end-to-end scenarios.
func threeItemCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Columns: catalog.Schema,
		Items: []catalog.Item{
			{ID: "1", Title: "Item1", Genres: "Comedy", Runtime: 50, Platforms: "Netflix"},
			{ID: "2", Title: "Item2", Genres: "Action", Runtime: 150, Platforms: "Prime"},
			{ID: "3", Title: "Item3", Genres: "Comedy,Family", Runtime: 55, Platforms: "Netflix"},
		},
	}
}

// mixedCatalog has enough variety to exercise every filter stage.
func mixedCatalog() *catalog.Catalog {
	genres := []string{"Comedy", "Drama", "Action,Thriller", "Family,Animation", "Documentary", "Romance,Comedy", "Sci-Fi", "Biography,Drama"}
	platforms := []string{"Netflix", "Prime", "Disney+", "HBO Max", "Netflix,Prime", ""}
	items := make([]catalog.Item, 0, 40)
	for i := 0; i < 40; i++ {
		items = append(items, catalog.Item{
			ID:          fmt.Sprintf("tt%03d", i),
			Title:       fmt.Sprintf("Movie %d", i),
			Genres:      genres[i%len(genres)],
			Runtime:     45 + (i*7)%120,
			Platforms:   platforms[i%len(platforms)],
			Description: fmt.Sprintf("A %s story number %d", genres[(i+3)%len(genres)], i),
		})
	}
	return &catalog.Catalog{Columns: catalog.Schema, Items: items}
}

func newTestEngine(t *testing.T, cat *catalog.Catalog) *Engine {
	t.Helper()
	e, err := NewEngine(cat, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func ids(items []ScoredItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestNewEngine(t *testing.T) {
	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewEngine(nil, nil, zerolog.Nop())
		if !errors.Is(err, catalog.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("catalog without runtime column", func(t *testing.T) {
		cat := threeItemCatalog()
		cat.Columns = []string{catalog.ColumnID, catalog.ColumnTitle}
		_, err := NewEngine(cat, nil, zerolog.Nop())
		if !errors.Is(err, catalog.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Limits.DefaultK = 0
		_, err := NewEngine(threeItemCatalog(), cfg, zerolog.Nop())
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		e := newTestEngine(t, &catalog.Catalog{})
		resp, err := e.Recommend(context.Background(), Request{Mood: "felice"})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if resp.Items == nil || len(resp.Items) != 0 {
			t.Errorf("Items = %v, want empty non-nil slice", resp.Items)
		}
	})

	t.Run("stats", func(t *testing.T) {
		e := newTestEngine(t, threeItemCatalog())
		s := e.Stats()
		if s.Items != 3 || s.VocabularySize != 3 || s.Dimensions != 4 {
			t.Errorf("Stats() = %+v", s)
		}
		if s.RuntimeMin != 50 || s.RuntimeMax != 150 {
			t.Errorf("runtime range = (%v, %v), want (50, 150)", s.RuntimeMin, s.RuntimeMax)
		}
	})
}

func TestNewEngineFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewEngineFromFile(context.Background(), filepath.Join(dir, "nope.csv"), catalog.ReaderCSV, nil, zerolog.Nop())
		if !errors.Is(err, catalog.ErrCatalogLoad) {
			t.Errorf("error = %v, want ErrCatalogLoad", err)
		}
	})

	t.Run("missing runtime column", func(t *testing.T) {
		path := filepath.Join(dir, "no_runtime.csv")
		if err := os.WriteFile(path, []byte("movie_id,title,genres\ntt1,A,Comedy\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := NewEngineFromFile(context.Background(), path, catalog.ReaderCSV, nil, zerolog.Nop())
		if !errors.Is(err, catalog.ErrInvalidCatalog) {
			t.Errorf("error = %v, want ErrInvalidCatalog", err)
		}
	})

	t.Run("loads and recommends", func(t *testing.T) {
		path := filepath.Join(dir, "movies.csv")
		content := "movie_id,title,genres,runtime,platforms\n" +
			"tt1,Item1,Comedy,50,Netflix\n" +
			"tt2,Item2,Action,150,Prime\n" +
			"tt3,Item3,\"Comedy,Family\",,Netflix\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		e, err := NewEngineFromFile(context.Background(), path, catalog.ReaderCSV, nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngineFromFile() error = %v", err)
		}
		// runtime back-filled with median(50, 150) = 100
		if got := e.Catalog().Items[2].Runtime; got != 100 {
			t.Errorf("back-filled runtime = %d, want 100", got)
		}
		resp, err := e.Recommend(context.Background(), Request{Mood: "triste", Platform: "Netflix", K: 5})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(resp.Items) != 2 {
			t.Errorf("got %v, want two Netflix items", ids(resp.Items))
		}
	})
}

// Scenario A: sad mood, short runtime, Netflix.
func TestRecommend_ScenarioShortNetflixComedy(t *testing.T) {
	e := newTestEngine(t, threeItemCatalog())

	resp, err := e.Recommend(context.Background(), Request{
		Mood:     "triste",
		Duration: "<60",
		Platform: "Netflix",
		K:        2,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if got, want := ids(resp.Items), []string{"3", "1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for _, it := range resp.Items {
		if it.Platforms != "Netflix" || it.Runtime > 60 {
			t.Errorf("item %s violates filters: %+v", it.ID, it.Item)
		}
	}
	if resp.Items[0].Score < resp.Items[1].Score {
		t.Errorf("scores not descending: %v, %v", resp.Items[0].Score, resp.Items[1].Score)
	}
	if resp.TotalCandidates != 2 {
		t.Errorf("TotalCandidates = %d, want 2", resp.TotalCandidates)
	}
	if len(resp.Metadata.Fallbacks) != 0 {
		t.Errorf("Fallbacks = %v, want none", resp.Metadata.Fallbacks)
	}
}

// Scenario B: no item on the platform yields an empty, well-formed result.
func TestRecommend_ScenarioNoPlatformMatch(t *testing.T) {
	e := newTestEngine(t, threeItemCatalog())

	resp, err := e.Recommend(context.Background(), Request{
		Mood:     "triste",
		Duration: "<60",
		Platform: "HBO Max",
		K:        2,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v, empty result must not be an error", err)
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", resp.Items)
	}
	if !reflect.DeepEqual(resp.Columns, Columns()) {
		t.Errorf("Columns = %v, want %v", resp.Columns, Columns())
	}
	if resp.Columns[len(resp.Columns)-1] != ScoreColumn {
		t.Errorf("last column = %q, want %q", resp.Columns[len(resp.Columns)-1], ScoreColumn)
	}
	if resp.Metadata.Stages[0].After != 0 {
		t.Errorf("platform stage after = %d, want 0", resp.Metadata.Stages[0].After)
	}
	if s := e.Stats(); s.EmptyResults != 1 {
		t.Errorf("EmptyResults = %d, want 1", s.EmptyResults)
	}
}

// Scenario C: an absent desired genre falls back instead of emptying the result.
func TestRecommend_ScenarioUnknownDesiredGenre(t *testing.T) {
	e := newTestEngine(t, threeItemCatalog())

	resp, err := e.Recommend(context.Background(), Request{
		Mood:         "triste",
		Duration:     "<60",
		Platform:     "Netflix",
		K:            5,
		DesiredGenre: "Horror",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("items = %v, want the two pre-genre candidates", ids(resp.Items))
	}
	if got := resp.Metadata.Fallbacks; !reflect.DeepEqual(got, []filter.Stage{filter.StageGenre}) {
		t.Errorf("Fallbacks = %v, want [genre]", got)
	}
	if resp.Metadata.DesiredGenre != "horror" {
		t.Errorf("DesiredGenre = %q, want normalized %q", resp.Metadata.DesiredGenre, "horror")
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	e := newTestEngine(t, mixedCatalog())
	req := Request{Mood: "riflessivo", Duration: "90-120", Platform: "any", K: 10, DesiredGenre: "Drama"}

	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	second, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Errorf("results differ between identical calls:\n%v\n%v", ids(first.Items), ids(second.Items))
	}
}

func TestRecommend_TopN(t *testing.T) {
	e := newTestEngine(t, mixedCatalog())

	for _, k := range []int{1, 3, 10, 40, 100} {
		resp, err := e.Recommend(context.Background(), Request{Mood: "unknown", Platform: "any", K: k})
		if err != nil {
			t.Fatalf("Recommend(k=%d) error = %v", k, err)
		}
		want := k
		if resp.TotalCandidates < want {
			want = resp.TotalCandidates
		}
		if len(resp.Items) != want {
			t.Errorf("k=%d: returned %d, want min(k, %d) = %d", k, len(resp.Items), resp.TotalCandidates, want)
		}
	}
}

func TestRecommend_DefaultK(t *testing.T) {
	e := newTestEngine(t, mixedCatalog())

	for _, k := range []int{0, -3} {
		resp, err := e.Recommend(context.Background(), Request{Mood: "felice", K: k})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(resp.Items) != DefaultConfig().Limits.DefaultK {
			t.Errorf("K=%d returned %d items, want DefaultK", k, len(resp.Items))
		}
	}
}

func TestRecommend_ScoreBounds(t *testing.T) {
	e := newTestEngine(t, mixedCatalog())

	moods := []string{"felice", "triste", "stressato", "riflessivo", "neutro", "boh"}
	durations := []string{"<60", "60-90", "90-120", ">120", "whatever"}
	for _, mood := range moods {
		for _, dur := range durations {
			resp, err := e.Recommend(context.Background(), Request{Mood: mood, Duration: dur, K: 40})
			if err != nil {
				t.Fatalf("Recommend(%s, %s) error = %v", mood, dur, err)
			}
			for i, it := range resp.Items {
				if it.Score < -1e-9 || it.Score > 1+1e-9 {
					t.Errorf("%s/%s: score %v out of [0, 1]", mood, dur, it.Score)
				}
				if i > 0 && it.Score > resp.Items[i-1].Score {
					t.Errorf("%s/%s: scores not descending at %d", mood, dur, i)
				}
			}
		}
	}
}

// All runtimes outside the band must produce the same candidate count as an
// unrestricted duration.
func TestRecommend_DurationFallbackCount(t *testing.T) {
	cat := &catalog.Catalog{
		Columns: catalog.Schema,
		Items: []catalog.Item{
			{ID: "a", Genres: "Drama", Runtime: 130},
			{ID: "b", Genres: "Comedy", Runtime: 140},
			{ID: "c", Genres: "Action", Runtime: 200},
		},
	}
	e := newTestEngine(t, cat)

	short, err := e.Recommend(context.Background(), Request{Mood: "x", Duration: "<60", K: 10})
	if err != nil {
		t.Fatal(err)
	}
	unrestricted, err := e.Recommend(context.Background(), Request{Mood: "x", Duration: "", K: 10})
	if err != nil {
		t.Fatal(err)
	}
	if short.TotalCandidates != unrestricted.TotalCandidates {
		t.Errorf("candidates with impossible band = %d, unrestricted = %d", short.TotalCandidates, unrestricted.TotalCandidates)
	}
	if !reflect.DeepEqual(short.Metadata.Fallbacks, []filter.Stage{filter.StageDuration}) {
		t.Errorf("Fallbacks = %v, want [duration]", short.Metadata.Fallbacks)
	}
}

func TestRecommend_MetadataAndColumns(t *testing.T) {
	e := newTestEngine(t, threeItemCatalog())

	resp, err := e.Recommend(context.Background(), Request{Mood: "felice", Duration: ">120", RequestID: "req-1"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Metadata.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want req-1", resp.Metadata.RequestID)
	}
	if resp.Metadata.TargetRuntime != 5060 {
		t.Errorf("TargetRuntime = %v, want 5060", resp.Metadata.TargetRuntime)
	}
	if !reflect.DeepEqual(resp.Metadata.MoodGenres, []string{"Action", "Adventure", "Sci-Fi", "Thriller"}) {
		t.Errorf("MoodGenres = %v", resp.Metadata.MoodGenres)
	}
	if len(resp.Metadata.Stages) != 4 {
		t.Errorf("got %d stage results, want 4", len(resp.Metadata.Stages))
	}
	if !reflect.DeepEqual(resp.Columns, Columns()) {
		t.Errorf("Columns = %v", resp.Columns)
	}

	generated, _ := e.Recommend(context.Background(), Request{Mood: "felice"})
	if generated.Metadata.RequestID == "" {
		t.Error("request ID should be generated when empty")
	}
}

func TestRecommend_CanceledContext(t *testing.T) {
	e := newTestEngine(t, threeItemCatalog())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Recommend(ctx, Request{Mood: "felice"}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRecommend_DoesNotMutateCatalog(t *testing.T) {
	cat := mixedCatalog()
	before := mixedCatalog()
	e := newTestEngine(t, cat)

	resp, err := e.Recommend(context.Background(), Request{Mood: "triste", Duration: "<60", Platform: "Netflix", K: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) > 0 {
		resp.Items[0].Title = "changed"
	}
	if !reflect.DeepEqual(cat.Items, before.Items) {
		t.Error("catalog items were modified")
	}
}

func TestRecommend_Concurrent(t *testing.T) {
	e := newTestEngine(t, mixedCatalog())
	req := Request{Mood: "stressato", Duration: "60-90", Platform: "Prime", K: 5}

	want, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Recommend(context.Background(), req)
			if err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(got.Items, want.Items) {
				errs <- fmt.Errorf("concurrent result %v differs from %v", ids(got.Items), ids(want.Items))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	if got := e.Stats().Requests; got != 33 {
		t.Errorf("Requests = %d, want 33", got)
	}
}

func TestQueryText(t *testing.T) {
	tests := []struct {
		genres  []string
		desired string
		want    string
	}{
		{[]string{"Drama", "Comedy"}, "", "Drama Comedy"},
		{[]string{"Action", "Sci-Fi"}, "horror", "Action Sci-Fi horror"},
		{nil, "", ""},
	}
	for _, tt := range tests {
		if got := QueryText(tt.genres, tt.desired); got != tt.want {
			t.Errorf("QueryText(%v, %q) = %q, want %q", tt.genres, tt.desired, got, tt.want)
		}
	}
}
