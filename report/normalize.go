package report

import (
	"sort"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sanitize"
)

// Payloads are never modified in place: each normalize method returns a
// deep copy whose strings have gone through the sanitizer.

func cleanAll(s *sanitize.Sanitizer, in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if c := s.Clean(v); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// mergeCounts re-keys a status map by sanitized key. Keys that collapse to
// the same text have their counts summed; empty keys are dropped.
func mergeCounts(s *sanitize.Sanitizer, in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		ck := s.Clean(k)
		if ck == "" {
			continue
		}
		out[ck] += v
	}
	return out
}

// statusCount is one entry of a status map.
type statusCount struct {
	Status string
	N      int
}

// sortedCounts orders a status map by count descending, then by name.
func sortedCounts(m map[string]int) []statusCount {
	out := make([]statusCount, 0, len(m))
	for k, v := range m {
		out = append(out, statusCount{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Status < out[j].Status
	})
	return out
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (c Candidate) normalize(s *sanitize.Sanitizer) Candidate {
	out := Candidate{
		Name:       s.Clean(c.Name),
		ReportDate: s.Clean(c.ReportDate),
		Contact: Contact{
			Email: s.Clean(c.Contact.Email),
			Phone: s.Clean(c.Contact.Phone),
			City:  s.Clean(c.Contact.City),
			State: s.Clean(c.Contact.State),
		},
		Professional: Professional{
			Company:    s.Clean(c.Professional.Company),
			Position:   s.Clean(c.Professional.Position),
			Education:  s.Clean(c.Professional.Education),
			University: s.Clean(c.Professional.University),
			Years:      copyFloat(c.Professional.Years),
		},
		Stats:  c.Stats,
		Skills: cleanAll(s, c.Skills),
	}
	for _, a := range c.Applications {
		out.Applications = append(out.Applications, Application{
			Profile: s.Clean(a.Profile),
			Client:  s.Clean(a.Client),
			Status:  s.Clean(a.Status),
			Date:    s.Clean(a.Date),
			Match:   copyFloat(a.Match),
		})
	}
	for _, e := range c.Evaluations {
		ev := Evaluation{
			Template: s.Clean(e.Template),
			Category: s.Clean(e.Category),
			Status:   s.Clean(e.Status),
			Score:    copyFloat(e.Score),
			Date:     s.Clean(e.Date),
		}
		if e.Passed != nil {
			v := *e.Passed
			ev.Passed = &v
		}
		out.Evaluations = append(out.Evaluations, ev)
	}
	for _, d := range c.Documents {
		out.Documents = append(out.Documents, CandidateDocument{
			Name: s.Clean(d.Name),
			Type: s.Clean(d.Type),
			Date: s.Clean(d.Date),
		})
	}
	for _, n := range c.Notes {
		out.Notes = append(out.Notes, CandidateNote{
			Type:    s.Clean(n.Type),
			Content: s.Clean(n.Content),
			Author:  s.Clean(n.Author),
			Date:    s.Clean(n.Date),
		})
	}
	return out
}

func (p ProfileCandidates) normalize(s *sanitize.Sanitizer) ProfileCandidates {
	out := ProfileCandidates{
		Position: s.Clean(p.Position),
		Date:     s.Clean(p.Date),
		Client:   s.Clean(p.Client),
	}
	for _, c := range p.Candidates {
		out.Candidates = append(out.Candidates, ProfileCandidate{
			Name:   s.Clean(c.Name),
			Email:  s.Clean(c.Email),
			Status: s.Clean(c.Status),
			Match:  c.Match,
		})
	}
	return out
}

func (c Client) normalize(s *sanitize.Sanitizer) Client {
	out := Client{
		Info: ClientInfo{
			CompanyName:  s.Clean(c.Info.CompanyName),
			Industry:     s.Clean(c.Info.Industry),
			Website:      s.Clean(c.Info.Website),
			ContactName:  s.Clean(c.Info.ContactName),
			ContactEmail: s.Clean(c.Info.ContactEmail),
			ContactPhone: s.Clean(c.Info.ContactPhone),
			Address:      s.Clean(c.Info.Address),
			City:         s.Clean(c.Info.City),
			State:        s.Clean(c.Info.State),
			Notes:        s.Clean(c.Info.Notes),
		},
		Stats:            c.Stats,
		ProfilesByStatus: mergeCounts(s, c.ProfilesByStatus),
	}
	out.Stats.AvgDaysToComplete = copyFloat(c.Stats.AvgDaysToComplete)
	for _, p := range c.Profiles {
		out.Profiles = append(out.Profiles, ClientProfile{
			Title:           s.Clean(p.Title),
			StatusDisplay:   s.Clean(p.StatusDisplay),
			Priority:        s.Clean(p.Priority),
			CandidatesCount: p.CandidatesCount,
			CreatedAt:       s.Clean(p.CreatedAt),
			EndDate:         s.Clean(p.EndDate),
		})
	}
	return out
}

func (c Consolidated) normalize(s *sanitize.Sanitizer) Consolidated {
	out := Consolidated{Summary: c.Summary}
	if c.Filter != nil {
		f := *c.Filter
		f.ClientName = s.Clean(f.ClientName)
		f.ProfileTitle = s.Clean(f.ProfileTitle)
		out.Filter = &f
	}
	out.Summary.ProfilesByStatus = mergeCounts(s, c.Summary.ProfilesByStatus)
	out.Summary.CandidatesByStatus = mergeCounts(s, c.Summary.CandidatesByStatus)
	for _, p := range c.Profiles {
		np := p
		np.PositionTitle = s.Clean(p.PositionTitle)
		np.ClientName = s.Clean(p.ClientName)
		np.Status = s.Clean(p.Status)
		np.Priority = s.Clean(p.Priority)
		np.CreatedAt = s.Clean(p.CreatedAt)
		np.LocationCity = s.Clean(p.LocationCity)
		np.LocationState = s.Clean(p.LocationState)
		np.WorkModality = s.Clean(p.WorkModality)
		np.EducationLevel = s.Clean(p.EducationLevel)
		np.CandidatesByStatus = mergeCounts(s, p.CandidatesByStatus)
		out.Profiles = append(out.Profiles, np)
	}
	for _, cl := range c.Clients {
		nc := cl
		nc.CompanyName = s.Clean(cl.CompanyName)
		nc.Industry = s.Clean(cl.Industry)
		nc.ContactName = s.Clean(cl.ContactName)
		nc.ContactEmail = s.Clean(cl.ContactEmail)
		nc.ContactPhone = s.Clean(cl.ContactPhone)
		nc.ProfilesByStatus = mergeCounts(s, cl.ProfilesByStatus)
		out.Clients = append(out.Clients, nc)
	}
	for _, cd := range c.Candidates {
		nc := cd
		nc.FullName = s.Clean(cd.FullName)
		nc.Email = s.Clean(cd.Email)
		nc.Phone = s.Clean(cd.Phone)
		nc.Status = s.Clean(cd.Status)
		nc.ProfileTitle = s.Clean(cd.ProfileTitle)
		nc.ClientName = s.Clean(cd.ClientName)
		nc.CurrentPosition = s.Clean(cd.CurrentPosition)
		nc.CurrentCompany = s.Clean(cd.CurrentCompany)
		nc.City = s.Clean(cd.City)
		nc.State = s.Clean(cd.State)
		out.Candidates = append(out.Candidates, nc)
	}
	return out
}

func (t Timeline) normalize(s *sanitize.Sanitizer) Timeline {
	out := t
	out.Position = s.Clean(t.Position)
	out.Client = s.Clean(t.Client)
	out.ReportDate = s.Clean(t.ReportDate)
	out.Candidates = nil
	out.Events = nil
	for _, c := range t.Candidates {
		out.Candidates = append(out.Candidates, TimelineCandidate{
			Name:      s.Clean(c.Name),
			Email:     s.Clean(c.Email),
			AppliedAt: s.Clean(c.AppliedAt),
			Match:     c.Match,
			Status:    s.Clean(c.Status),
		})
	}
	for _, e := range t.Events {
		out.Events = append(out.Events, TimelineEvent{
			At:          s.Clean(e.At),
			Type:        s.Clean(e.Type),
			Description: s.Clean(e.Description),
		})
	}
	return out
}
