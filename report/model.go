package report

// The payload types mirror the JSON the recruitment backend sends, so field
// names follow its Spanish or English keys. Optional numbers are pointers:
// nil renders as "N/A" rather than as zero.

// Candidate is the payload of the individual candidate report.
type Candidate struct {
	Name         string              `json:"nombre"`
	ReportDate   string              `json:"fecha_reporte"`
	Contact      Contact             `json:"contacto"`
	Professional Professional        `json:"profesional"`
	Stats        CandidateStats      `json:"estadisticas"`
	Skills       []string            `json:"habilidades"`
	Applications []Application       `json:"aplicaciones"`
	Evaluations  []Evaluation        `json:"evaluaciones,omitempty"`
	Documents    []CandidateDocument `json:"documentos,omitempty"`
	Notes        []CandidateNote     `json:"notas,omitempty"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"telefono"`
	City  string `json:"ciudad"`
	State string `json:"estado"`
}

type Professional struct {
	Company    string   `json:"empresa_actual,omitempty"`
	Position   string   `json:"posicion_actual,omitempty"`
	Education  string   `json:"educacion"`
	University string   `json:"universidad,omitempty"`
	Years      *float64 `json:"experiencia_anios"`
}

type CandidateStats struct {
	Applications int `json:"aplicaciones"`
	Documents    int `json:"documentos"`
	Evaluations  int `json:"evaluaciones"`
}

// Application is one application of the candidate to a profile.
type Application struct {
	Profile string   `json:"perfil"`
	Client  string   `json:"cliente"`
	Status  string   `json:"estado"`
	Date    string   `json:"fecha"`
	Match   *float64 `json:"match_porcentaje,omitempty"`
}

type Evaluation struct {
	Template string   `json:"template"`
	Category string   `json:"categoria,omitempty"`
	Status   string   `json:"estado"`
	Score    *float64 `json:"puntaje,omitempty"`
	Passed   *bool    `json:"aprobado,omitempty"`
	Date     string   `json:"fecha,omitempty"`
}

type CandidateDocument struct {
	Name string `json:"nombre"`
	Type string `json:"tipo"`
	Date string `json:"fecha"`
}

type CandidateNote struct {
	Type    string `json:"tipo"`
	Content string `json:"contenido"`
	Author  string `json:"autor,omitempty"`
	Date    string `json:"fecha"`
}

// ProfileCandidates is the payload of the candidates-by-profile report.
type ProfileCandidates struct {
	Position   string             `json:"puesto"`
	Date       string             `json:"fecha"`
	Client     string             `json:"cliente"`
	Candidates []ProfileCandidate `json:"candidatos"`
}

type ProfileCandidate struct {
	Name   string  `json:"nombre"`
	Email  string  `json:"email"`
	Status string  `json:"estado"`
	Match  float64 `json:"match_porcentaje"`
}

// Client is the payload of the client report.
type Client struct {
	Info             ClientInfo      `json:"client"`
	Stats            ClientStats     `json:"statistics"`
	Profiles         []ClientProfile `json:"profiles"`
	ProfilesByStatus map[string]int  `json:"profiles_by_status"`
}

type ClientInfo struct {
	CompanyName  string `json:"company_name"`
	Industry     string `json:"industry"`
	Website      string `json:"website,omitempty"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type ClientStats struct {
	TotalProfiles          int      `json:"total_profiles"`
	CompletedProfiles      int      `json:"completed_profiles"`
	ActiveProfiles         int      `json:"active_profiles"`
	SuccessRate            float64  `json:"success_rate"`
	AvgDaysToComplete      *float64 `json:"avg_days_to_complete"`
	TotalCandidatesManaged int      `json:"total_candidates_managed"`
}

type ClientProfile struct {
	Title           string `json:"title"`
	StatusDisplay   string `json:"status_display"`
	Priority        string `json:"priority"`
	CandidatesCount int    `json:"candidates_count"`
	CreatedAt       string `json:"created_at"`
	EndDate         string `json:"end_date,omitempty"`
}

// Consolidated is the payload of the consolidated report across profiles,
// clients and candidates.
type Consolidated struct {
	Filter     *Filter           `json:"filter,omitempty"`
	Summary    Summary           `json:"summary"`
	Profiles   []ProfileRecord   `json:"profiles"`
	Clients    []ClientRecord    `json:"clients"`
	Candidates []CandidateRecord `json:"candidates"`
}

// Filter narrows a consolidated report. Type is "all", "client" or "profile".
type Filter struct {
	Type         string `json:"type"`
	ClientID     int    `json:"clientId,omitempty"`
	ClientName   string `json:"clientName,omitempty"`
	ProfileID    int    `json:"profileId,omitempty"`
	ProfileTitle string `json:"profileTitle,omitempty"`
}

type Summary struct {
	TotalProfiles      int            `json:"total_profiles"`
	TotalCandidates    int            `json:"total_candidates"`
	TotalClients       int            `json:"total_clients"`
	ProfilesCompleted  int            `json:"profiles_completed"`
	CandidatesHired    int            `json:"candidates_hired"`
	AvgTimeToFill      float64        `json:"avg_time_to_fill"`
	SuccessRate        float64        `json:"success_rate"`
	ProfilesByStatus   map[string]int `json:"profiles_by_status"`
	CandidatesByStatus map[string]int `json:"candidates_by_status"`
}

type ProfileRecord struct {
	ID                 int            `json:"id"`
	PositionTitle      string         `json:"position_title"`
	ClientName         string         `json:"client_name"`
	ClientID           int            `json:"client_id"`
	Status             string         `json:"status"`
	Priority           string         `json:"priority"`
	CreatedAt          string         `json:"created_at"`
	CandidatesCount    int            `json:"candidates_count"`
	ShortlistedCount   int            `json:"shortlisted_count"`
	InterviewedCount   int            `json:"interviewed_count"`
	SalaryMin          float64        `json:"salary_min"`
	SalaryMax          float64        `json:"salary_max"`
	LocationCity       string         `json:"location_city"`
	LocationState      string         `json:"location_state"`
	WorkModality       string         `json:"work_modality"`
	YearsExperience    float64        `json:"years_experience"`
	EducationLevel     string         `json:"education_level"`
	DaysOpen           int            `json:"days_open"`
	CandidatesByStatus map[string]int `json:"candidates_by_status"`
}

type ClientRecord struct {
	ID                   int            `json:"id"`
	CompanyName          string         `json:"company_name"`
	Industry             string         `json:"industry"`
	ContactName          string         `json:"contact_name"`
	ContactEmail         string         `json:"contact_email"`
	ContactPhone         string         `json:"contact_phone"`
	ActiveProfiles       int            `json:"active_profiles"`
	TotalProfiles        int            `json:"total_profiles"`
	TotalCandidatesHired int            `json:"total_candidates_hired"`
	TotalCandidates      int            `json:"total_candidates"`
	ProfilesCompleted    int            `json:"profiles_completed"`
	SuccessRate          float64        `json:"success_rate"`
	ProfilesByStatus     map[string]int `json:"profiles_by_status"`
}

type CandidateRecord struct {
	ID              int     `json:"id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Status          string  `json:"status"`
	ProfileID       int     `json:"profile_id"`
	ProfileTitle    string  `json:"profile_title"`
	ClientName      string  `json:"client_name"`
	MatchingScore   float64 `json:"matching_score"`
	CurrentPosition string  `json:"current_position"`
	CurrentCompany  string  `json:"current_company"`
	YearsExperience float64 `json:"years_experience"`
	City            string  `json:"city"`
	State           string  `json:"state"`
}

// Timeline is the payload of the profile timeline report.
type Timeline struct {
	Position        string              `json:"puesto"`
	Client          string              `json:"cliente"`
	ReportDate      string              `json:"fecha_reporte"`
	DaysOpen        float64             `json:"dias_abierto"`
	TotalCandidates int                 `json:"total_candidatos"`
	AvgMatch        float64             `json:"match_promedio"`
	TotalEvents     int                 `json:"total_eventos"`
	Candidates      []TimelineCandidate `json:"candidatos"`
	Events          []TimelineEvent     `json:"eventos"`
}

type TimelineCandidate struct {
	Name      string  `json:"nombre"`
	Email     string  `json:"email"`
	AppliedAt string  `json:"fecha_aplico"`
	Match     float64 `json:"match_porcentaje"`
	Status    string  `json:"estado"`
}

type TimelineEvent struct {
	At          string `json:"fecha_hora"`
	Type        string `json:"tipo"`
	Description string `json:"descripcion"`
}
