package filter

import "github.com/okian/concursos/internal/domain/model"

// Summary holds the header counters of the listing page.
type Summary struct {
	Contests     int `json:"contests"`
	Participants int `json:"participants"`
	Organizers   int `json:"organizers"`
}

// Summarize counts contests, sums participants and counts distinct organizer
// ids. Contests without an organizer id are not counted as an organizer.
func Summarize(contests []model.Contest) Summary {
	organizers := make(map[string]struct{}, len(contests))
	s := Summary{Contests: len(contests)}
	for i := range contests {
		s.Participants += contests[i].ParticipantCount
		if id := contests[i].Organizer.ID; id != "" {
			organizers[id] = struct{}{}
		}
	}
	s.Organizers = len(organizers)
	return s
}
