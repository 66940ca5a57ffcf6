package seed

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/okian/concursos/pkg/logger"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidCount is returned when the requested number of contests is negative.
var ErrInvalidCount = errors.New("seed: count must not be negative")

const (
	defaultOrganizers = 5
	day               = 24 * time.Hour
)

// Date window shapes, cycled so every listing section is populated.
const (
	shapeFinished = iota
	shapeOngoing
	shapeUpcomingOpen
	shapeUpcomingOpenEnded
	shapeCount
)

var (
	locations = []string{
		"Trujillo, La Libertad",
		"Chiclayo, Lambayeque",
		"Piura",
		"Cajamarca",
		"Tumbes",
		"Chachapoyas, Amazonas",
		"Huaraz, Áncash",
	}
	animalTypes = []string{
		"Caballo Peruano de Paso",
		"Bovino",
		"Ovino",
		"Caprino",
		"Alpaca",
		"Porcino",
		"Cuy",
	}
	titles = []string{"Concurso Regional", "Feria Ganadera", "Exposición Nacional", "Gran Concurso"}
)

// Generate builds cfg.Count contests in the backend wire format.
func Generate(ctx context.Context, cfg Config) ([]Contest, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, cfg.Count)
	}
	if cfg.Organizers <= 0 {
		cfg.Organizers = defaultOrganizers
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	now := cfg.Now.UTC().Truncate(time.Hour)

	src := rand.NewChaCha8(seedBytes(cfg.Seed))
	rng := rand.New(src)

	companies := make([]Company, cfg.Organizers)
	for i := range companies {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, fmt.Errorf("organizer id: %w", err)
		}
		loc := locations[rng.IntN(len(locations))]
		companies[i] = Company{
			ID:        id.String(),
			Nombre:    fmt.Sprintf("Asociación de Criadores %d", i+1),
			Ubicacion: loc,
		}
	}

	logger.Get().Info(ctx, "generating contests",
		logger.Int("count", cfg.Count),
		logger.Int("organizers", cfg.Organizers),
	)

	contests := make([]Contest, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during generation: %w", err)
		}
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, fmt.Errorf("contest id: %w", err)
		}
		contests = append(contests, generateOne(rng, i, id.String(), companies[rng.IntN(len(companies))], now))
	}
	return contests, nil
}

func generateOne(rng *rand.Rand, index int, id string, org Company, now time.Time) Contest {
	animal := animalTypes[rng.IntN(len(animalTypes))]
	tags := []string{animal}
	if rng.IntN(3) == 0 {
		if extra := animalTypes[rng.IntN(len(animalTypes))]; extra != animal {
			tags = append(tags, extra)
		}
	}

	var start, end, regStart, regEnd time.Time
	switch index % shapeCount {
	case shapeFinished:
		start = now.Add(-time.Duration(30+rng.IntN(300)) * day)
		end = start.Add(time.Duration(1+rng.IntN(5)) * day)
		regStart = start.Add(-45 * day)
		regEnd = start.Add(-2 * day)
	case shapeOngoing:
		start = now.Add(-time.Duration(1+rng.IntN(3)) * day)
		end = now.Add(time.Duration(1+rng.IntN(4)) * day)
	case shapeUpcomingOpen:
		start = now.Add(time.Duration(20+rng.IntN(60)) * day)
		end = start.Add(time.Duration(1+rng.IntN(5)) * day)
		regStart = now.Add(-time.Duration(1+rng.IntN(10)) * day)
		regEnd = start.Add(-3 * day)
	case shapeUpcomingOpenEnded:
		start = now.Add(time.Duration(10+rng.IntN(120)) * day)
	}

	title := titles[rng.IntN(len(titles))]
	name := fmt.Sprintf("%s de %s %d", title, animal, start.Year())
	c := Contest{
		ID:               id,
		Nombre:           name,
		Slug:             fmt.Sprintf("%s-%d", Slugify(name), index+1),
		Descripcion:      fmt.Sprintf("%s organizado por %s.", name, org.Nombre),
		FechaInicio:      start.Format(time.RFC3339),
		FechaFin:         formatOptional(end),
		Ubicacion:        locations[rng.IntN(len(locations))],
		TipoGanado:       tags,
		IsActive:         index%shapeCount != shapeFinished,
		ParticipantCount: rng.IntN(150),
		Company:          org,
		CreatedAt:        start.Add(-60 * day).Format(time.RFC3339),
	}
	if !regStart.IsZero() {
		// Registration dates are sent date-only, as the backend forms do.
		c.FechaInicioRegistro = regStart.Format(time.DateOnly)
		c.FechaFinRegistro = regEnd.Format(time.DateOnly)
	}
	if rng.IntN(2) == 0 {
		fee := float64(20 + 10*rng.IntN(10))
		c.CuotaInscripcion = &fee
	}
	return c
}

func formatOptional(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// Slugify lowercases s, drops accents and joins words with dashes.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	fields := strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}

func seedBytes(seed uint64) [32]byte {
	var b [32]byte
	if seed == 0 {
		_, _ = cryptorand.Read(b[:])
		return b
	}
	binary.LittleEndian.PutUint64(b[:8], seed)
	return b
}
