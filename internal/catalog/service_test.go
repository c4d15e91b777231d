package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/cinedaily/cinedaily/internal/testutil"
)

func testEntry(slug string) *Entry {
	return &Entry{
		ExternalID:   1001,
		Slug:         slug,
		Title:        "Some Movie",
		Year:         "1999",
		Overview:     "A plot.",
		Director:     "A Director",
		Cast:         "An Actor, Another Actor",
		ArtworkURL:   "https://art.example.com/x.jpg",
		SeedTerms:    []string{"liam"},
		FetchedDates: []string{"2026-03-14"},
	}
}

func TestCatalogService_CreateAndGet(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	created, err := service.Create(ctx, testEntry("some-movie"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("Create() entry.ID is empty, want generated id")
	}

	got, err := service.GetBySlug(ctx, "some-movie")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != "Some Movie" {
		t.Errorf("GetBySlug() Title = %q, want %q", got.Title, "Some Movie")
	}
	if !reflect.DeepEqual(got.SeedTerms, []string{"liam"}) {
		t.Errorf("GetBySlug() SeedTerms = %v, want [liam]", got.SeedTerms)
	}
	if !reflect.DeepEqual(got.FetchedDates, []string{"2026-03-14"}) {
		t.Errorf("GetBySlug() FetchedDates = %v, want [2026-03-14]", got.FetchedDates)
	}
}

func TestCatalogService_Create_DuplicateSlug(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	if _, err := service.Create(ctx, testEntry("some-movie")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := service.Create(ctx, testEntry("some-movie")); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("Create() error = %v, want ErrDuplicateSlug", err)
	}
}

func TestCatalogService_Create_Invalid(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	for _, entry := range []*Entry{nil, {Slug: "", Title: "X"}, {Slug: "x", Title: ""}} {
		if _, err := service.Create(ctx, entry); !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("Create(%+v) error = %v, want ErrInvalidEntry", entry, err)
		}
	}
}

func TestCatalogService_Update(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	if _, err := service.Create(ctx, testEntry("some-movie")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	changed := testEntry("some-movie")
	changed.Title = "Renamed Movie"
	changed.Year = "2001"

	updated, err := service.Update(ctx, changed)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "Renamed Movie" || updated.Year != "2001" {
		t.Errorf("Update() = {Title: %q, Year: %q}", updated.Title, updated.Year)
	}
	// Provenance is untouched by content updates.
	if !reflect.DeepEqual(updated.SeedTerms, []string{"liam"}) {
		t.Errorf("Update() SeedTerms = %v, want [liam]", updated.SeedTerms)
	}

	if _, err := service.Update(ctx, testEntry("missing")); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Update() error = %v, want ErrEntryNotFound", err)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	if _, err := service.Create(ctx, testEntry("some-movie")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := service.Delete(ctx, "some-movie"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := service.GetBySlug(ctx, "some-movie"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetBySlug() after delete error = %v, want ErrEntryNotFound", err)
	}
	if err := service.Delete(ctx, "some-movie"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrEntryNotFound", err)
	}
}

func TestCatalogService_FindByFetchedDate(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	a := testEntry("movie-a")
	a.FetchedDates = []string{"2026-03-14"}
	b := testEntry("movie-b")
	b.FetchedDates = []string{"2026-03-15"}
	c := testEntry("movie-c")
	c.FetchedDates = []string{"2026-03-14", "2026-03-15"}

	for _, entry := range []*Entry{a, b, c} {
		if _, err := service.Create(ctx, entry); err != nil {
			t.Fatalf("Create(%q) error = %v", entry.Slug, err)
		}
	}

	got, err := service.FindByFetchedDate(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("FindByFetchedDate() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FindByFetchedDate() returned %d entries, want 2", len(got))
	}
	if got[0].Slug != "movie-a" || got[1].Slug != "movie-c" {
		t.Errorf("FindByFetchedDate() slugs = [%q, %q], want [movie-a, movie-c]", got[0].Slug, got[1].Slug)
	}
}

func TestCatalogService_FindBySeedTerm(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	a := testEntry("movie-a")
	a.SeedTerms = []string{"liam"}
	b := testEntry("movie-b")
	b.SeedTerms = []string{"emma"}

	for _, entry := range []*Entry{a, b} {
		if _, err := service.Create(ctx, entry); err != nil {
			t.Fatalf("Create(%q) error = %v", entry.Slug, err)
		}
	}

	got, err := service.FindBySeedTerm(ctx, "emma")
	if err != nil {
		t.Fatalf("FindBySeedTerm() error = %v", err)
	}
	if len(got) != 1 || got[0].Slug != "movie-b" {
		t.Errorf("FindBySeedTerm() = %v, want [movie-b]", got)
	}
}

func TestCatalogService_SaveBatch_InsertsNewEntries(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	var batch []*Entry
	for n := 1; n <= 5; n++ {
		batch = append(batch, testEntry(fmt.Sprintf("movie-%d", n)))
	}

	if err := service.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("SaveBatch() error = %v", err)
	}

	all, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 5 {
		t.Errorf("List() returned %d entries, want 5", len(all))
	}
}

func TestCatalogService_ListOrderIsInsertionOrder(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	// All rows land within the same wall-clock second, so only a
	// monotonic sort key keeps them in insertion order.
	var batch []*Entry
	for n := 1; n <= 20; n++ {
		entry := testEntry(fmt.Sprintf("movie-%02d", n))
		entry.FetchedDates = []string{"2026-03-14"}
		batch = append(batch, entry)
	}
	if err := service.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("SaveBatch() error = %v", err)
	}

	all, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 20 {
		t.Fatalf("List() returned %d entries, want 20", len(all))
	}
	for i, entry := range all {
		want := fmt.Sprintf("movie-%02d", i+1)
		if entry.Slug != want {
			t.Fatalf("List()[%d].Slug = %q, want %q", i, entry.Slug, want)
		}
	}

	// The date lookup feeds the daily cache hit, so repeated calls must
	// return the same entries in the same order.
	first, err := service.FindByFetchedDate(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("FindByFetchedDate() error = %v", err)
	}
	for run := 0; run < 3; run++ {
		again, err := service.FindByFetchedDate(ctx, "2026-03-14")
		if err != nil {
			t.Fatalf("FindByFetchedDate() error = %v", err)
		}
		if !reflect.DeepEqual(slugs(again), slugs(first)) {
			t.Fatalf("FindByFetchedDate() order changed between calls: %v vs %v", slugs(again), slugs(first))
		}
	}
}

func slugs(entries []*Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Slug
	}
	return out
}

func TestCatalogService_SaveBatch_MergesProvenanceOnExistingSlug(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	service := NewService(tdb.Conn, tdb.Logger)
	ctx := context.Background()

	first := testEntry("some-movie")
	first.SeedTerms = []string{"liam"}
	first.FetchedDates = []string{"2026-03-14"}
	if err := service.SaveBatch(ctx, []*Entry{first}); err != nil {
		t.Fatalf("SaveBatch() error = %v", err)
	}

	// A second run hits the same title through a different term a day
	// later. The stored content must win, the provenance must grow.
	second := testEntry("some-movie")
	second.Title = "Different Upstream Title"
	second.SeedTerms = []string{"emma"}
	second.FetchedDates = []string{"2026-03-15"}
	if err := service.SaveBatch(ctx, []*Entry{second}); err != nil {
		t.Fatalf("SaveBatch() error = %v", err)
	}

	got, err := service.GetBySlug(ctx, "some-movie")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != "Some Movie" {
		t.Errorf("Title = %q, want the originally stored %q", got.Title, "Some Movie")
	}
	if !reflect.DeepEqual(got.SeedTerms, []string{"liam", "emma"}) {
		t.Errorf("SeedTerms = %v, want [liam emma]", got.SeedTerms)
	}
	if !reflect.DeepEqual(got.FetchedDates, []string{"2026-03-14", "2026-03-15"}) {
		t.Errorf("FetchedDates = %v, want [2026-03-14 2026-03-15]", got.FetchedDates)
	}

	all, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("List() returned %d entries after the merge, want 1", len(all))
	}
}
