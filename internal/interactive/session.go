// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package interactive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/recommend"
)

// ErrInputClosed is returned when the input ends before the profile is seeded.
var ErrInputClosed = errors.New("interactive: input closed")

// Recommender is the engine surface a session needs.
type Recommender interface {
	Search(query string, limit int) ([]recommend.SearchResult, error)
	RecommendRequest(req recommend.Request) (*recommend.Response, error)
	ItemInfo(id int) (catalog.Item, error)
}

// Options tune a session.
type Options struct {
	// Seeds is the number of films picked before the first round.
	Seeds int

	// PerRound is the number of recommendations shown at a time.
	PerRound int

	// MorePool is how many candidates are ranked when the user asks for
	// more recommendations.
	MorePool int

	// SearchLimit caps the search results listed.
	SearchLimit int

	// Filter is an optional expression applied to every recommendation.
	Filter string
}

// DefaultOptions returns the standard session shape.
func DefaultOptions() Options {
	return Options{
		Seeds:       3,
		PerRound:    4,
		MorePool:    100,
		SearchLimit: 10,
	}
}

// Session is one interactive run. It is not safe for concurrent use.
type Session struct {
	rec    Recommender
	opts   Options
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger

	picks  []Pick
	rounds int
	shown  map[int]struct{}
}

// NewSession creates a session. Zero option fields take their defaults.
//
//nolint:gocritic // hugeParam: opts is copied once at construction
func NewSession(rec Recommender, in io.Reader, out io.Writer, opts Options) *Session {
	def := DefaultOptions()
	if opts.Seeds <= 0 {
		opts.Seeds = def.Seeds
	}
	if opts.PerRound <= 0 {
		opts.PerRound = def.PerRound
	}
	if opts.MorePool < opts.PerRound {
		opts.MorePool = max(def.MorePool, opts.PerRound)
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = def.SearchLimit
	}
	return &Session{
		rec:    rec,
		opts:   opts,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logging.WithComponent("interactive"),
		shown:  make(map[int]struct{}),
	}
}

// Run drives the session until the user stops, the input ends or ctx is
// canceled, then prints and returns the summary.
func (s *Session) Run(ctx context.Context) (*Summary, error) {
	s.header()
	s.println("Welcome! Pick films you enjoyed so the recommender can learn your taste.")
	s.printf("Choose %d films to build your profile.\n", s.opts.Seeds)

	if err := s.seed(ctx); err != nil {
		return nil, err
	}

	s.println()
	s.showProfile()
	s.println("Your profile is ready. Recommendations start now.")
	if _, err := s.readLine(ctx, "Press Enter to continue..."); err != nil {
		return s.finish(), ignoreClosed(err)
	}

	for {
		more, err := s.round(ctx)
		if err != nil {
			return s.finish(), ignoreClosed(err)
		}
		if !more {
			break
		}
		cont, err := s.askContinue(ctx)
		if err != nil {
			return s.finish(), ignoreClosed(err)
		}
		if !cont {
			break
		}
	}
	return s.finish(), nil
}

// Watched returns the ids picked so far in pick order.
func (s *Session) Watched() []int {
	ids := make([]int, len(s.picks))
	for i, p := range s.picks {
		ids[i] = p.Item.ID
	}
	return ids
}

func (s *Session) seed(ctx context.Context) error {
	for i := 0; i < s.opts.Seeds; i++ {
		id, err := s.searchAndSelect(ctx, fmt.Sprintf("Choose film %d of %d:", i+1, s.opts.Seeds))
		if err != nil {
			return err
		}
		if err := s.pick(id, 0); err != nil {
			return err
		}
		if i < s.opts.Seeds-1 {
			s.showProfile()
		}
	}
	return nil
}

// round runs one recommendation round. It reports false when no
// recommendation could be produced.
func (s *Session) round(ctx context.Context) (bool, error) {
	s.rounds++
	clear(s.shown)
	s.printf("\nRound %d: updating your taste profile...\n", s.rounds)

	resp, err := s.rec.RecommendRequest(recommend.Request{
		WatchedIDs: s.Watched(),
		K:          s.opts.PerRound,
		Filter:     s.opts.Filter,
	})
	if err != nil {
		return false, fmt.Errorf("recommend: %w", err)
	}
	if len(resp.Items) == 0 {
		s.println("No recommendations could be produced for this profile.")
		return false, nil
	}
	s.logger.Debug().Int("round", s.rounds).Int("watched", len(s.picks)).Int("results", len(resp.Items)).Msg("Round started")

	s.showRecommendations(resp.Items, fmt.Sprintf("Round %d recommendations", s.rounds))
	id, ok, err := s.chooseRecommendation(ctx, resp.Items)
	if err != nil {
		return false, err
	}
	if !ok {
		s.println("Round skipped.")
		return true, nil
	}
	if err := s.pick(id, s.rounds); err != nil {
		return false, err
	}
	s.printf("Films in your profile: %d\n", len(s.picks))
	return true, nil
}

// chooseRecommendation offers the round menu until the user picks a film
// or skips. ok is false on skip.
func (s *Session) chooseRecommendation(ctx context.Context, items []recommend.Recommendation) (id int, ok bool, err error) {
	for {
		n := len(items)
		s.println("\nOptions:")
		s.printf("  1-%d: pick one of the films above\n", n)
		s.printf("  %d: more recommendations\n", n+1)
		s.printf("  %d: search for a film\n", n+2)
		s.printf("  %d: skip this round\n", n+3)

		answer, err := s.readLine(ctx, fmt.Sprintf("Your choice (1-%d): ", n+3))
		if err != nil {
			return 0, false, err
		}
		choice, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil:
			s.println("Please enter a number.")
		case choice >= 1 && choice <= n:
			return items[choice-1].Item.ID, true, nil
		case choice == n+1:
			more, err := s.more()
			if err != nil {
				return 0, false, err
			}
			if len(more) == 0 {
				s.println("No further recommendations found. Try another option.")
				continue
			}
			s.printf("Found %d new recommendations.\n", len(more))
			s.showRecommendations(more, "Alternative recommendations")
			items = more
		case choice == n+2:
			id, err := s.searchAndSelect(ctx, "Which film are you looking for?")
			if err != nil {
				return 0, false, err
			}
			return id, true, nil
		case choice == n+3:
			return 0, false, nil
		default:
			s.printf("Please enter a number between 1 and %d.\n", n+3)
		}
	}
}

// more ranks a wider pool and returns the next films not yet shown this round.
func (s *Session) more() ([]recommend.Recommendation, error) {
	exclude := make([]int, 0, len(s.shown))
	for id := range s.shown {
		exclude = append(exclude, id)
	}
	sort.Ints(exclude)

	resp, err := s.rec.RecommendRequest(recommend.Request{
		WatchedIDs: s.Watched(),
		K:          s.opts.MorePool,
		ExcludeIDs: exclude,
		Filter:     s.opts.Filter,
	})
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	out := make([]recommend.Recommendation, 0, s.opts.PerRound)
	for _, r := range resp.Items {
		if _, seen := s.shown[r.Item.ID]; seen {
			continue
		}
		out = append(out, r)
		if len(out) == s.opts.PerRound {
			break
		}
	}
	return out, nil
}

// searchAndSelect loops until the user picks a film not already in the
// profile.
func (s *Session) searchAndSelect(ctx context.Context, prompt string) (int, error) {
	for {
		s.printf("\n%s\n", prompt)
		s.println("Tip: type part of a title.")
		query, err := s.readLine(ctx, "Search title: ")
		if err != nil {
			return 0, err
		}
		if query == "" {
			s.println("Please enter a title.")
			continue
		}

		results, err := s.rec.Search(query, s.opts.SearchLimit)
		if err != nil && !errors.Is(err, recommend.ErrEmptyInput) {
			return 0, fmt.Errorf("search: %w", err)
		}
		if len(results) == 0 {
			s.printf("No films match %q. Try again.\n", query)
			continue
		}

		s.printf("\nFilms matching %q:\n", query)
		for i, r := range results {
			s.printf("  %d. %s\n", i+1, describeResult(r))
		}

		answer, err := s.readLine(ctx, fmt.Sprintf("Pick a film (1-%d) or 'again': ", len(results)))
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(answer, "again") {
			continue
		}
		choice, convErr := strconv.Atoi(answer)
		if convErr != nil {
			s.println("Please enter a number.")
			continue
		}
		if choice < 1 || choice > len(results) {
			s.println("Invalid choice. Pick a number from the list.")
			continue
		}
		id := results[choice-1].ID
		if s.picked(id) {
			s.println("You already picked this film. Choose another one.")
			continue
		}
		return id, nil
	}
}

func (s *Session) askContinue(ctx context.Context) (bool, error) {
	for {
		answer, err := s.readLine(ctx, "\nContinue? (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			s.println("Please answer 'y' or 'n'.")
		}
	}
}

func (s *Session) pick(id, round int) error {
	it, err := s.rec.ItemInfo(id)
	if err != nil {
		return fmt.Errorf("item %d: %w", id, err)
	}
	s.picks = append(s.picks, Pick{Item: it, Round: round})
	s.printf("Selected: %s%s\n", it.Title, ratingSuffix(it.Rating))
	return nil
}

func (s *Session) picked(id int) bool {
	for _, p := range s.picks {
		if p.Item.ID == id {
			return true
		}
	}
	return false
}

func (s *Session) finish() *Summary {
	sum := Summarize(s.picks, s.rounds)
	s.println()
	s.header()
	sum.Render(s.out)
	return sum
}

// readLine prompts and returns the trimmed answer. End of input maps to
// ErrInputClosed.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		s.println()
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func ignoreClosed(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}

func (s *Session) header() {
	bar := strings.Repeat("=", 60)
	s.println(bar)
	s.println("  Filmscout - content-based film recommendations")
	s.println(bar)
}

func (s *Session) showProfile() {
	if len(s.picks) == 0 {
		return
	}
	s.printf("Your films so far (%d):\n", len(s.picks))
	for i, p := range s.picks {
		s.printf("  %d. %s%s (%s)%s\n", i+1, p.Item.Title, yearSuffix(p.Item.Year), p.Item.Genres, ratingSuffix(p.Item.Rating))
	}
	s.println()
}

func (s *Session) showRecommendations(items []recommend.Recommendation, label string) {
	s.printf("\n%s:\n", label)
	s.println(strings.Repeat("-", 50))
	for i, r := range items {
		it := r.Item
		s.printf("  %d. %s\n", i+1, it.Title)
		s.printf("     Genres: %s\n", it.Genres)
		s.printf("     Director: %s\n", it.Director)
		s.printf("     Similarity: %.1f%%\n", r.Score*100)
		if it.Rating > 0 {
			s.printf("     IMDb: %.1f\n", it.Rating)
		}
		if it.Year > 0 {
			s.printf("     Year: %d\n", it.Year)
		}
		if it.Runtime > 0 {
			s.printf("     Runtime: %d min\n", it.Runtime)
		}
		s.shown[it.ID] = struct{}{}
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	_, _ = fmt.Fprintln(s.out, args...)
}

func describeResult(r recommend.SearchResult) string {
	return fmt.Sprintf("%s%s (%s) - %s%s", r.Title, yearSuffix(r.Year), r.Genres, r.Director, ratingSuffix(r.Rating))
}

func yearSuffix(year int) string {
	if year <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d)", year)
}

func ratingSuffix(rating float64) string {
	if rating <= 0 {
		return ""
	}
	return fmt.Sprintf(" - rated %.1f", rating)
}
