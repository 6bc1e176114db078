package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sections"
)

var spanishMX = language.MustParse("es-MX")

// spanish holds the translations of every fixed string drawn by a report.
// English text doubles as the message key.
var spanish = map[string]string{
	// document
	"Page %d of %d":   "Página %d de %d",
	"Generated on %s": "Generado el %s",
	"Confidential document. For internal use only.": "Documento confidencial. Solo para uso interno.",
	"No data available":                             "Sin datos disponibles",
	"N/A":                                           "N/D",
	"Today":                                         "Hoy",
	"+%d more":                                      "+%d más",
	"Reference: %s":                                 "Referencia: %s",
	"Verification":                                  "Verificación",

	// titles
	"Candidate Report":      "Reporte de Candidato",
	"Candidates by Profile": "Candidatos por Perfil",
	"Client Report":         "Reporte de Cliente",
	"Consolidated Report":   "Reporte Consolidado",
	"Profile Timeline":      "Timeline del Perfil",

	// section titles
	"Skills":                   "Habilidades",
	"Applications":             "Aplicaciones",
	"Best Match":               "Mejor Match",
	"Evaluations":              "Evaluaciones",
	"Documents":                "Documentos",
	"Internal Notes":           "Notas Internas",
	"Match Distribution":       "Distribución de Match",
	"Candidates":               "Candidatos",
	"Candidates by Status":     "Candidatos por Estado",
	"Profiles by Status":       "Perfiles por Estado",
	"Profiles":                 "Perfiles",
	"Clients":                  "Clientes",
	"Top Candidates":           "Mejores Candidatos",
	"Profile Lifetime":         "Vigencia de Perfiles",
	"Process Phases":           "Fases del Proceso",
	"Efficiency":               "Eficiencia",
	"Event History":            "Historial de Eventos",
	"Notes":                    "Notas",
	"Contact":                  "Contacto",
	"Professional":             "Profesional",
	"Company":                  "Empresa",
	"Profile":                  "Perfil",
	"Client":                   "Cliente",
	"All clients and profiles": "Todos los clientes y perfiles",
	"Client: %s":               "Cliente: %s",
	"Profile: %s":              "Perfil: %s",

	// KPI and field labels
	"Avg match":          "Match promedio",
	"Top match":          "Match máximo",
	"Offers / hired":     "Ofertas / contratados",
	"Total":              "Total",
	"Total profiles":     "Perfiles totales",
	"Completed":          "Completados",
	"Active":             "Activos",
	"Success rate":       "Tasa de éxito",
	"Avg days to fill":   "Días promedio",
	"Candidates managed": "Candidatos gestionados",
	"Hired":              "Contratados",
	"Days open":          "Días abierto",
	"Events":             "Eventos",
	"since %s":           "desde %s",
	"Email":              "Email",
	"Phone":              "Teléfono",
	"Location":           "Ubicación",
	"Position":           "Puesto",
	"Education":          "Educación",
	"University":         "Universidad",
	"Experience":         "Experiencia",
	"%s years":           "%s años",
	"Industry":           "Industria",
	"Website":            "Sitio web",
	"Address":            "Dirección",
	"Name":               "Nombre",
	"Status":             "Estado",
	"Match":              "Match",
	"Date":               "Fecha",
	"Type":               "Tipo",
	"Title":              "Título",
	"Priority":           "Prioridad",
	"Created":            "Creado",
	"End date":           "Fecha fin",
	"Salary":             "Salario",
	"Applied":            "Aplicó",
	"Score: %s":          "Puntaje: %s",
	"Approved":           "Aprobado",
	"Not approved":       "No aprobado",
	"This process":       "Este proceso",
	"Industry benchmark": "Promedio de la industria",
	"%.0f%% faster than the industry benchmark": "%.0f%% más rápido que el promedio de la industria",
	"%.0f%% slower than the industry benchmark": "%.0f%% más lento que el promedio de la industria",
	"Profile creation":                          "Creación del perfil",
	"Receiving candidates":                      "Recepción de candidatos",
	"Interview":                                 "Entrevistas",
}

var englishMonths = [...]string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

var spanishMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

var catalogs = func() map[string]catalog.Catalog {
	en := catalog.NewBuilder(catalog.Fallback(language.English))
	es := catalog.NewBuilder(catalog.Fallback(language.English))
	for k, v := range spanish {
		_ = es.SetString(spanishMX, k, v)
	}
	return map[string]catalog.Catalog{"en": en, "es": es}
}()

// Labels translates fixed strings and formats dates and numbers for one
// locale.
type Labels struct {
	locale string
	p      *message.Printer
}

// NewLabels returns the labels for "en" or "es". Anything else is English.
func NewLabels(locale string) Labels {
	if locale != "es" {
		return Labels{locale: "en", p: message.NewPrinter(language.English, message.Catalog(catalogs["en"]))}
	}
	return Labels{locale: "es", p: message.NewPrinter(spanishMX, message.Catalog(catalogs["es"]))}
}

// Locale returns "en" or "es".
func (l Labels) Locale() string { return l.locale }

// T translates a fixed message and applies args to it.
func (l Labels) T(key string, args ...any) string {
	return l.p.Sprintf(key, args...)
}

// Date formats t as "March 1, 2024" or "1 de marzo de 2024".
func (l Labels) Date(t time.Time) string {
	if t.IsZero() {
		return l.T("N/A")
	}
	if l.locale == "es" {
		return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
	}
	return fmt.Sprintf("%s %d, %d", englishMonths[t.Month()-1], t.Day(), t.Year())
}

// ShortDate formats t as "Mar 1, 2024" or "1 mar 2024".
func (l Labels) ShortDate(t time.Time) string {
	if t.IsZero() {
		return l.T("N/A")
	}
	if l.locale == "es" {
		return fmt.Sprintf("%d %s %d", t.Day(), spanishMonths[t.Month()-1][:3], t.Year())
	}
	return t.Format("Jan 2, 2006")
}

// DateString parses a payload date and formats it with ShortDate. Text that
// is not a recognised date is returned as is.
func (l Labels) DateString(s string) string {
	if t, ok := parseDate(s); ok {
		return l.ShortDate(t)
	}
	if s == "" {
		return l.T("N/A")
	}
	return s
}

// Int formats n with locale digit grouping.
func (l Labels) Int(n int) string { return l.p.Sprintf("%d", n) }

// Number formats v with the given decimals and locale digit grouping.
func (l Labels) Number(v float64, decimals int) string {
	return l.p.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Percent formats v as a whole percentage.
func (l Labels) Percent(v float64) string { return fmt.Sprintf("%.0f%%", v) }

// MXN formats an amount of Mexican pesos, such as "$45,000 MXN".
func (l Labels) MXN(v float64) string {
	return "$" + l.p.Sprintf("%.0f", v) + " MXN"
}

// SalaryRange formats a min-max range. A zero bound is omitted.
func (l Labels) SalaryRange(min, max float64) string {
	switch {
	case min > 0 && max > 0:
		return "$" + l.p.Sprintf("%.0f", min) + " - " + l.MXN(max)
	case max > 0:
		return l.MXN(max)
	case min > 0:
		return l.MXN(min)
	}
	return l.T("N/A")
}

// Sections returns the labels the section widgets draw on their own.
func (l Labels) Sections() sections.Labels {
	return sections.Labels{
		NotAvailable: l.T("N/A"),
		NoData:       l.T("No data available"),
		Today:        l.T("Today"),
		More:         func(n int) string { return l.T("+%d more", n) },
		Date:         l.ShortDate,
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"02/01/2006",
}

// parseDate accepts the date formats the backend emits.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
