// Package generate synthesizes fake personal records with a uniqueness
// guarantee on the numeric identifier field.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"

	"fakegen/internal/dataset"
)

const (
	// DefaultIDMin and DefaultIDMax bound the identifier space. The range
	// holds 900,000 distinct values.
	DefaultIDMin = 100000
	DefaultIDMax = 999999

	// DefaultWarnThreshold is the record count above which unique-id draws
	// start colliding often enough to matter.
	DefaultWarnThreshold = 900_000

	descriptionMaxChars = 100
)

// ErrInvalidCount rejects non-positive record counts.
var ErrInvalidCount = errors.New("record count must be at least 1")

// GenerationError wraps any failure during record synthesis, including
// identifier-space exhaustion.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating records: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Options configures a Generator. The zero value selects the default
// identifier range, warn threshold, and a time-based seed.
type Options struct {
	IDMin         int
	IDMax         int
	WarnThreshold int
	Seed          uint64
}

// Generator produces Datasets of synthetic records. Each Generator owns its
// own identifier pool, so uniqueness is scoped to one Generator instance.
// Not safe for concurrent use.
type Generator struct {
	faker         *gofakeit.Faker
	pool          *idPool
	warnThreshold int
}

// New builds a Generator from opts, filling in defaults for zero fields.
func New(opts Options) *Generator {
	if opts.IDMin == 0 && opts.IDMax == 0 {
		opts.IDMin = DefaultIDMin
		opts.IDMax = DefaultIDMax
	}
	if opts.WarnThreshold == 0 {
		opts.WarnThreshold = DefaultWarnThreshold
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		faker:         gofakeit.New(seed),
		pool:          newIDPool(opts.IDMin, opts.IDMax, rand.New(rand.NewSource(int64(seed)))),
		warnThreshold: opts.WarnThreshold,
	}
}

// Generate synthesizes count records with pairwise-distinct ids. On any
// synthesis failure the partial dataset is discarded and a GenerationError
// is returned.
func (g *Generator) Generate(count int) (dataset.Dataset, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > g.warnThreshold {
		log.Warn().
			Int("count", count).
			Int("capacity", g.pool.capacity()).
			Msg("Requested count approaches the identifier space capacity, unique-id draws will collide frequently")
	}

	start := time.Now()
	ds := make(dataset.Dataset, 0, count)
	for i := 0; i < count; i++ {
		rec, err := g.record()
		if err != nil {
			return nil, &GenerationError{Err: err}
		}
		ds = append(ds, rec)
	}

	log.Info().
		Int("count", count).
		Dur("elapsed", time.Since(start)).
		Msg("Generation pass complete")
	return ds, nil
}

func (g *Generator) record() (dataset.Record, error) {
	id, err := g.pool.next()
	if err != nil {
		return dataset.Record{}, err
	}
	return dataset.Record{
		ID:               id,
		Name:             g.faker.Name(),
		Company:          g.faker.Company(),
		JobTitle:         g.faker.JobTitle(),
		Email:            g.faker.Email(),
		IPAddress:        g.faker.IPv4Address(),
		RegistrationDate: g.registrationDate().Format("2006-01-02"),
		Description:      g.description(),
	}, nil
}

// registrationDate picks a date between the start of the current decade and
// now.
func (g *Generator) registrationDate() time.Time {
	now := time.Now()
	decade := time.Date(now.Year()-now.Year()%10, time.January, 1, 0, 0, 0, 0, time.UTC)
	return g.faker.DateRange(decade, now)
}

// description returns free text with newlines folded to spaces, capped at
// descriptionMaxChars runes.
func (g *Generator) description() string {
	text := g.faker.Paragraph(1, 2, 10, " ")
	text = strings.ReplaceAll(text, "\n", " ")
	if runes := []rune(text); len(runes) > descriptionMaxChars {
		text = string(runes[:descriptionMaxChars])
	}
	return strings.TrimRight(text, " ")
}
