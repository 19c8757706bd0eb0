package client

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Filtres de statut; "pending" est l'alias de la vue utilisateur pour
// les signalements non résolus
const (
	StatusAll        = "all"
	StatusResolved   = "resolved"
	StatusUnresolved = "unresolved"
	StatusPending    = "pending"
)

const TypeAll = "all"

var collator = collate.New(language.English)

func filterByStatus(reports []Report, status string) []Report {
	if status == "" || status == StatusAll {
		return reports
	}
	out := make([]Report, 0, len(reports))
	for _, r := range reports {
		resolved := r.ResolvedAt != nil
		switch status {
		case StatusResolved:
			if resolved {
				out = append(out, r)
			}
		case StatusUnresolved, StatusPending:
			if !resolved {
				out = append(out, r)
			}
		}
	}
	return out
}

func filterByType(reports []Report, reportType string) []Report {
	if reportType == "" || reportType == TypeAll {
		return reports
	}
	out := make([]Report, 0, len(reports))
	for _, r := range reports {
		if r.Type == reportType {
			out = append(out, r)
		}
	}
	return out
}

// sortValue extrait la valeur de tri d'un champ; le booléen indique null
func sortValue(r Report, field string) (string, bool) {
	switch field {
	case "id":
		return r.ID, false
	case "type":
		return r.Type, false
	case "target_id":
		return r.TargetID, false
	case "reason":
		return r.Reason, false
	case "description":
		if r.Description == nil {
			return "", true
		}
		return *r.Description, false
	case "submitted_by":
		if r.SubmittedBy == nil {
			return "", true
		}
		return *r.SubmittedBy, false
	case "resolved_by":
		if r.ResolvedBy == nil {
			return "", true
		}
		return *r.ResolvedBy, false
	case "resolved_at":
		if r.ResolvedAt == nil {
			return "", true
		}
		return *r.ResolvedAt, false
	case "created_at":
		return r.CreatedAt, false
	default:
		return "", true
	}
}

func compareTimestamps(a, b string) int {
	at, errA := time.Parse(time.RFC3339, a)
	bt, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return at.Compare(bt)
}

// sortReports renvoie une copie triée; les valeurs nulles vont toujours en
// fin de liste, quelle que soit la direction.
func sortReports(reports []Report, field string, direction SortDirection) []Report {
	out := make([]Report, len(reports))
	copy(out, reports)

	sort.SliceStable(out, func(i, j int) bool {
		av, aNull := sortValue(out[i], field)
		bv, bNull := sortValue(out[j], field)

		if aNull {
			return false
		}
		if bNull {
			return true
		}

		var cmp int
		switch field {
		case "created_at", "resolved_at":
			cmp = compareTimestamps(av, bv)
		default:
			// tout champ non temporel est une chaîne: comparaison locale
			cmp = collator.CompareString(av, bv)
		}

		if direction == SortAscending {
			return cmp < 0
		}
		return cmp > 0
	})

	return out
}

func paginate(reports []Report, page, size int) []Report {
	if size <= 0 || page <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(reports) {
		return nil
	}
	end := start + size
	if end > len(reports) {
		end = len(reports)
	}
	return reports[start:end]
}

func pageCount(total, size int) int {
	if size <= 0 {
		return 1
	}
	count := (total + size - 1) / size
	if count < 1 {
		return 1
	}
	return count
}

// pageWindow renvoie au plus 5 numéros de page centrés sur la page courante
func pageWindow(current, total int) []int {
	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > total {
		end = total
		start = end - 4
		if start < 1 {
			start = 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
