// file: internal/reconcile/reconciler.go
// version: 1.2.0
// guid: 2d3e4f5a-6b7c-8d9e-0f1a-2b3c4d5e6f7a

// Package reconcile merges partial, possibly-contradictory metadata source
// records plus a file's own embedded tags into one canonical BookMetadata
// record per book group.
package reconcile

import (
	"context"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jdfalk/audiobook-curator/internal/ai"
	"github.com/jdfalk/audiobook-curator/internal/cache"
	"github.com/jdfalk/audiobook-curator/internal/covers"
	"github.com/jdfalk/audiobook-curator/internal/genres"
	"github.com/jdfalk/audiobook-curator/internal/metrics"
	"github.com/jdfalk/audiobook-curator/internal/models"
	"github.com/jdfalk/audiobook-curator/internal/normalize"
	"github.com/jdfalk/audiobook-curator/internal/sources"
)

// Enhancer is the AI pass consumed by the reconciler. *ai.Enhancer
// satisfies it; tests substitute fakes.
type Enhancer interface {
	IsEnabled() bool
	Enhance(ctx context.Context, seed ai.Enhancement) (*ai.Enhancement, error)
}

// Reconciler merges source records into canonical metadata. All fields are
// injected so tests can substitute fakes; a nil Catalog, Retailer, Enhancer
// or Cache simply contributes nothing.
type Reconciler struct {
	Tags     sources.TagReader
	Catalog  sources.Source
	Retailer sources.Source
	Enhancer Enhancer
	Cache    cache.Store
}

// Reconcile produces the canonical metadata for one book group and
// advances its state. A group loaded from a sidecar record is left
// untouched. The group's metadata is replaced atomically at the end of the
// merge, never field-by-field from outside.
func (r *Reconciler) Reconcile(ctx context.Context, group *models.BookGroup) error {
	if group.State == models.StateLoadedFromFile {
		log.Printf("[DEBUG] reconcile: %s adopted from sidecar, skipping", group.Name)
		return nil
	}

	seedTitle, seedAuthor, tags := r.seed(group)

	// A cache hit short-circuits the entire reconciliation, including all
	// source fetches.
	key := cache.MetadataKey(seedTitle, seedAuthor)
	if r.Cache != nil {
		var cached models.BookMetadata
		if ok, err := cache.GetJSON(r.Cache, key, &cached); err != nil {
			log.Printf("[WARN] reconcile: cache read for %s failed: %v", group.Name, err)
		} else if ok {
			metrics.IncCacheHits()
			group.Metadata = cached
			group.State = models.StateReconciled
			return nil
		}
	}

	group.State = models.StateMerging

	catalogRec := r.query(ctx, r.Catalog, seedTitle, seedAuthor)
	retailerRec := r.query(ctx, r.Retailer, seedTitle, seedAuthor)

	meta, pinnedYear := r.merge(group, seedTitle, seedAuthor, tags, catalogRec, retailerRec)
	meta = r.enhance(ctx, group, meta, pinnedYear)

	group.Metadata = meta
	group.State = models.StateReconciled
	metrics.IncGroupsReconciled()

	if r.Cache != nil {
		// Cache write failures are isolated: the result is still returned.
		if err := cache.SetJSON(r.Cache, key, &meta); err != nil {
			log.Printf("[ERROR] reconcile: cache write for %s failed: %v", group.Name, err)
		}
	}
	return nil
}

// seed derives the authoritative title/author pair from the group's first
// file's embedded tags, cleaned of junk suffixes and series markers, with
// the group name as fallback.
func (r *Reconciler) seed(group *models.BookGroup) (string, string, sources.EmbeddedTags) {
	var tags sources.EmbeddedTags
	if r.Tags != nil && len(group.Files) > 0 {
		t, err := r.Tags.Read(group.Files[0].Path)
		if err != nil {
			log.Printf("[WARN] reconcile: tag read failed for %s: %v", group.Files[0].Path, err)
		} else {
			tags = t
		}
	}

	title := tags.Title
	if title == "" {
		title = tags.Album
	}
	if title == "" {
		title = group.Name
	}
	title = normalize.StripJunkSuffixes(title)
	title = normalize.StripSeriesMarker(title)
	title = normalize.TitleCase(title)

	author := tags.Artist
	if !normalize.IsPlausiblePerson(author) {
		author = ""
	}
	if author != "" {
		author = normalize.CleanPersonName(author)
	}
	return title, author, tags
}

// query runs one source search and reduces the results to the single best
// candidate by fuzzy title match. Failures are logged and degrade the
// source to absent.
func (r *Reconciler) query(ctx context.Context, src sources.Source, title, author string) *sources.Record {
	if src == nil || title == "" {
		return nil
	}
	records, err := src.Search(ctx, title, author)
	if err != nil {
		metrics.IncSourceFailure(src.Name())
		log.Printf("[WARN] reconcile: source %s failed for %q: %v", src.Name(), title, err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}
	return pickBest(title, records)
}

// pickBest disambiguates a multi-result search by fuzzy-ranking candidate
// titles against the seed title.
func pickBest(title string, records []sources.Record) *sources.Record {
	titles := make([]string, len(records))
	for i, rec := range records {
		titles[i] = rec.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(title, titles)
	if len(ranks) == 0 {
		return &records[0]
	}
	sort.Sort(ranks)
	best := ranks[0]
	return &records[best.OriginalIndex]
}

// merge applies the field-fill policy: first-non-empty-wins by fixed
// source priority, with the documented special cases. Returns the merged
// record and the pinned year ("" when no trusted source supplied one).
func (r *Reconciler) merge(group *models.BookGroup, seedTitle, seedAuthor string, tags sources.EmbeddedTags, catalog, retailer *sources.Record) (models.BookMetadata, string) {
	meta := models.BookMetadata{
		Title:  seedTitle,
		Author: seedAuthor,
	}

	cat := orEmpty(catalog)
	ret := orEmpty(retailer)

	if meta.Author == "" {
		meta.Author = firstNonEmpty(cat.Author, ret.Author)
	}

	// Narrator: comment-tag extraction first, then source-reported.
	meta.Narrator = ExtractNarratorFromComment(tags.Comment)
	if meta.Narrator == "" {
		meta.Narrator = tags.Narrator
	}
	if meta.Narrator == "" {
		meta.Narrator = firstNonEmpty(ret.Narrator, cat.Narrator)
	}
	if meta.Narrator != "" {
		meta.Narrator = normalize.CleanPersonName(meta.Narrator)
	}

	// Year: sticky once a trusted source (retailer release date, catalog
	// published date) yields one.
	pinnedYear := ""
	if y, ok := normalize.ValidateYear(ret.ReleaseDate); ok {
		pinnedYear = y
	} else if y, ok := normalize.ValidateYear(cat.ReleaseDate); ok {
		pinnedYear = y
	}
	if pinnedYear != "" {
		meta.Year = pinnedYear
	} else if y, ok := normalize.ValidateYear(tags.Year); ok {
		meta.Year = y
	}

	// Series: retailer-reported wins over folder-derived. Resolved before
	// genre classification so age-band detection sees the series name.
	if ret.Series != "" {
		meta.Series, meta.Sequence = ret.Series, ret.Sequence
	} else if cat.Series != "" {
		meta.Series, meta.Sequence = cat.Series, cat.Sequence
	} else {
		meta.Series, meta.Sequence = ExtractSeriesFromFolder(filepath.Base(group.Dir))
	}

	// Genres: union of all sources' tokens fed once into the classifier.
	var genreTokens []string
	if tags.Genre != "" {
		genreTokens = append(genreTokens, tags.Genre)
	}
	genreTokens = append(genreTokens, cat.Genres...)
	genreTokens = append(genreTokens, ret.Genres...)
	meta.Genres = genres.Classify(genreTokens, genres.BookContext{
		Title:  seedTitle,
		Series: meta.Series,
		Author: meta.Author,
	})

	// Description: source synopsis preferred over raw file comment.
	for _, cand := range []string{cat.Description, ret.Description, tags.Comment} {
		if cand == "" {
			continue
		}
		if cleaned, ok := CleanDescription(cand, MinDescriptionLen); ok {
			meta.Description = cleaned
			break
		}
	}

	meta.Publisher = firstNonEmpty(cat.Publisher, ret.Publisher)
	meta.ISBN = firstNonEmpty(cat.ISBN, ret.ISBN, tags.ISBN)
	meta.Subtitle = firstNonEmpty(cat.Subtitle, ret.Subtitle)
	meta.ASIN = firstNonEmpty(ret.ASIN, tags.ASIN)
	meta.Language = firstNonEmpty(cat.Language, ret.Language, tags.Language)
	meta.Abridged = ret.Abridged
	meta.RuntimeMinutes = ret.RuntimeMinutes

	// Cover: priority-ordered candidate selection.
	var candidates []models.CoverCandidate
	if ret.CoverURL != "" {
		candidates = append(candidates, models.CoverCandidate{
			URL:    ret.CoverURL,
			Source: models.CoverSourceRetailerASIN,
			Width:  ret.CoverWidth,
			Height: ret.CoverHeight,
			Title:  ret.Title,
		})
	}
	if cat.CoverURL != "" {
		candidates = append(candidates, models.CoverCandidate{
			URL:    cat.CoverURL,
			Source: models.CoverSourceCatalog,
			Width:  cat.CoverWidth,
			Height: cat.CoverHeight,
			Title:  cat.Title,
		})
	}
	if picked := covers.PickBest(candidates, false); len(picked) > 0 {
		meta.CoverURL = picked[0].URL
	}

	// Subtitle split: a title carrying its own subtitle is split once.
	if meta.Subtitle == "" {
		if main, sub := normalize.SplitTitleSubtitle(meta.Title); sub != "" {
			meta.Title = main
			meta.Subtitle = sub
		}
	}

	return meta, pinnedYear
}

// enhance runs the optional AI pass and applies its output per the trust
// policy. The pinned year is forcibly reasserted after the merge.
func (r *Reconciler) enhance(ctx context.Context, group *models.BookGroup, meta models.BookMetadata, pinnedYear string) models.BookMetadata {
	if r.Enhancer == nil || !r.Enhancer.IsEnabled() {
		return meta
	}

	enh, err := r.Enhancer.Enhance(ctx, ai.Enhancement{
		Title:       meta.Title,
		Subtitle:    meta.Subtitle,
		Author:      meta.Author,
		Narrator:    meta.Narrator,
		Series:      meta.Series,
		Genres:      meta.Genres,
		Year:        meta.Year,
		Description: meta.Description,
	})
	if err != nil {
		metrics.IncSourceFailure("ai")
		log.Printf("[WARN] reconcile: AI enhancement failed for %s: %v", group.Name, err)
		return meta
	}

	// Title/author are trusted verbatim when returned: the prompt instructs
	// the model to preserve them unless obviously malformed.
	if enh.Title != "" {
		meta.Title = enh.Title
	}
	if enh.Author != "" {
		meta.Author = enh.Author
	}
	if enh.Narrator != "" {
		meta.Narrator = normalize.CleanPersonName(enh.Narrator)
	}
	if enh.Subtitle != "" {
		meta.Subtitle = enh.Subtitle
	}
	if meta.Series == "" && enh.Series != "" {
		meta.Series = enh.Series
		meta.Sequence = enh.Sequence
	}

	// AI genres replace the heuristic set entirely, still classified so the
	// taxonomy cap holds.
	if len(enh.Genres) > 0 {
		meta.Genres = genres.Classify(enh.Genres, genres.BookContext{
			Title:  meta.Title,
			Series: meta.Series,
			Author: meta.Author,
		})
	}

	// AI description must clear the higher bar or the prior candidate wins.
	if enh.Description != "" {
		if cleaned, ok := CleanDescription(enh.Description, MinAIDescriptionLen); ok {
			meta.Description = cleaned
		}
	}

	if pinnedYear == "" {
		if y, ok := normalize.ValidateYear(enh.Year); ok && meta.Year == "" {
			meta.Year = y
		}
	} else {
		// Reassert the trusted year no matter what the model returned.
		meta.Year = pinnedYear
	}

	return meta
}

func orEmpty(rec *sources.Record) sources.Record {
	if rec == nil {
		return sources.Record{}
	}
	return *rec
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
