package source

import (
	"strings"
	"time"

	"github.com/okian/concursos/internal/domain/model"
)

// payload is the envelope returned by GET /api/concursos.
type payload struct {
	Contests []record `json:"contests" koanf:"contests"`
}

// record mirrors one contest as serialized by the backend.
type record struct {
	ID                  string   `json:"id"`
	Nombre              string   `json:"nombre"`
	Slug                string   `json:"slug"`
	Descripcion         string   `json:"descripcion"`
	ImagenPrincipal     *string  `json:"imagenPrincipal"`
	FechaInicio         string   `json:"fechaInicio"`
	FechaFin            string   `json:"fechaFin"`
	FechaInicioRegistro string   `json:"fechaInicioRegistro"`
	FechaFinRegistro    string   `json:"fechaFinRegistro"`
	Ubicacion           string   `json:"ubicacion"`
	CuotaInscripcion    *float64 `json:"cuotaInscripcion"`
	TipoGanado          []string `json:"tipoGanado"`
	IsActive            bool     `json:"isActive"`
	ParticipantCount    int      `json:"participantCount"`
	Company             company  `json:"company"`
	CreatedAt           string   `json:"createdAt"`
}

type company struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Logo        string `json:"logo"`
	Descripcion string `json:"descripcion"`
	Ubicacion   string `json:"ubicacion"`
}

// Accepted layouts for backend dates, tried in order.
const (
	layoutLocalDateTime = "2006-01-02T15:04:05"
	layoutDate          = "2006-01-02"
)

// parseInstant parses s leniently. Anything it cannot read is reported as
// absent (nil) rather than as an error.
func parseInstant(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation(layoutLocalDateTime, s, loc); err == nil {
		return &t
	}
	// Date-only values are UTC midnight, as browsers read them.
	if t, err := time.Parse(layoutDate, s); err == nil {
		return &t
	}
	return nil
}

// toModel converts a wire record into the domain contest.
func (r *record) toModel(loc *time.Location) model.Contest {
	c := model.Contest{
		ID:                r.ID,
		Name:              r.Nombre,
		Slug:              r.Slug,
		Description:       r.Descripcion,
		StartDate:         parseInstant(r.FechaInicio, loc),
		EndDate:           parseInstant(r.FechaFin, loc),
		RegistrationStart: parseInstant(r.FechaInicioRegistro, loc),
		RegistrationEnd:   parseInstant(r.FechaFinRegistro, loc),
		Location:          r.Ubicacion,
		AnimalTypes:       r.TipoGanado,
		EntryFee:          r.CuotaInscripcion,
		Active:            r.IsActive,
		ParticipantCount:  r.ParticipantCount,
		CreatedAt:         parseInstant(r.CreatedAt, loc),
		Organizer: model.Organizer{
			ID:          r.Company.ID,
			Name:        r.Company.Nombre,
			Logo:        r.Company.Logo,
			Description: r.Company.Descripcion,
			Location:    r.Company.Ubicacion,
		},
	}
	if r.ImagenPrincipal != nil {
		c.ImageURL = *r.ImagenPrincipal
	}
	if c.AnimalTypes == nil {
		c.AnimalTypes = []string{}
	}
	if c.ParticipantCount < 0 {
		c.ParticipantCount = 0
	}
	return c
}

func toModels(records []record, loc *time.Location) []model.Contest {
	out := make([]model.Contest, 0, len(records))
	for i := range records {
		out = append(out, records[i].toModel(loc))
	}
	return out
}
