// Package seed generates synthetic contest collections in the backend wire
// format and serves them as a stand-in for the contests endpoint.
package seed

import "time"

// Config holds configuration for contest generation.
type Config struct {
	Count      int       // Number of contests to generate
	Organizers int       // Size of the organizer pool
	Now        time.Time // Instant the date windows are laid around
	Seed       uint64    // Non-zero makes the output reproducible
}

// Contest is one contest as serialized by the backend.
type Contest struct {
	ID                  string   `json:"id" yaml:"id"`
	Nombre              string   `json:"nombre" yaml:"nombre"`
	Slug                string   `json:"slug" yaml:"slug"`
	Descripcion         string   `json:"descripcion" yaml:"descripcion"`
	ImagenPrincipal     *string  `json:"imagenPrincipal,omitempty" yaml:"imagenPrincipal,omitempty"`
	FechaInicio         string   `json:"fechaInicio" yaml:"fechaInicio"`
	FechaFin            string   `json:"fechaFin,omitempty" yaml:"fechaFin,omitempty"`
	FechaInicioRegistro string   `json:"fechaInicioRegistro,omitempty" yaml:"fechaInicioRegistro,omitempty"`
	FechaFinRegistro    string   `json:"fechaFinRegistro,omitempty" yaml:"fechaFinRegistro,omitempty"`
	Ubicacion           string   `json:"ubicacion,omitempty" yaml:"ubicacion,omitempty"`
	CuotaInscripcion    *float64 `json:"cuotaInscripcion,omitempty" yaml:"cuotaInscripcion,omitempty"`
	TipoGanado          []string `json:"tipoGanado" yaml:"tipoGanado"`
	IsActive            bool     `json:"isActive" yaml:"isActive"`
	ParticipantCount    int      `json:"participantCount" yaml:"participantCount"`
	Company             Company  `json:"company" yaml:"company"`
	CreatedAt           string   `json:"createdAt" yaml:"createdAt"`
}

// Company is the organizer as serialized by the backend.
type Company struct {
	ID          string `json:"id" yaml:"id"`
	Nombre      string `json:"nombre" yaml:"nombre"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
	Descripcion string `json:"descripcion,omitempty" yaml:"descripcion,omitempty"`
	Ubicacion   string `json:"ubicacion,omitempty" yaml:"ubicacion,omitempty"`
}

// Payload is the envelope returned by GET /api/concursos.
type Payload struct {
	Contests []Contest `json:"contests" yaml:"contests"`
}
