package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleReports() []Report {
	resolvedAt := "2025-01-01T00:00:00Z"
	return []Report{
		{ID: "1", Type: "review", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "2", Type: "user", CreatedAt: "2025-02-01T00:00:00Z", ResolvedAt: &resolvedAt, ResolvedBy: strPtr("1")},
	}
}

func TestFilterByStatus(t *testing.T) {
	reports := sampleReports()

	unresolved := filterByStatus(reports, StatusUnresolved)
	assert.Len(t, unresolved, 1)
	assert.Equal(t, "1", unresolved[0].ID)

	resolved := filterByStatus(reports, StatusResolved)
	assert.Len(t, resolved, 1)
	assert.Equal(t, "2", resolved[0].ID)

	// "pending" est l'alias de la vue utilisateur
	pending := filterByStatus(reports, StatusPending)
	assert.Len(t, pending, 1)
	assert.Equal(t, "1", pending[0].ID)

	assert.Len(t, filterByStatus(reports, StatusAll), 2)
}

func TestFilterByType(t *testing.T) {
	reports := sampleReports()

	byType := filterByType(reports, "user")
	assert.Len(t, byType, 1)
	assert.Equal(t, "2", byType[0].ID)

	assert.Len(t, filterByType(reports, TypeAll), 2)
	assert.Empty(t, filterByType(reports, "business"))
}

func TestSortReports_ByCreatedAt(t *testing.T) {
	reports := sampleReports()

	desc := sortReports(reports, "created_at", SortDescending)
	assert.Equal(t, "2", desc[0].ID)
	assert.Equal(t, "1", desc[1].ID)

	asc := sortReports(reports, "created_at", SortAscending)
	assert.Equal(t, "1", asc[0].ID)
	assert.Equal(t, "2", asc[1].ID)
}

func TestSortReports_NullsAlwaysLast(t *testing.T) {
	reports := sampleReports()

	// le signalement 1 n'a pas de resolved_at: en fin de liste quelle
	// que soit la direction
	desc := sortReports(reports, "resolved_at", SortDescending)
	assert.Equal(t, "2", desc[0].ID)
	assert.Equal(t, "1", desc[1].ID)

	asc := sortReports(reports, "resolved_at", SortAscending)
	assert.Equal(t, "2", asc[0].ID)
	assert.Equal(t, "1", asc[1].ID)
}

func TestSortReports_StringField(t *testing.T) {
	reports := []Report{
		{ID: "1", Reason: "billing dispute"},
		{ID: "2", Reason: "Abusive language"},
		{ID: "3", Reason: "spam"},
	}

	asc := sortReports(reports, "reason", SortAscending)
	assert.Equal(t, []string{"2", "1", "3"}, []string{asc[0].ID, asc[1].ID, asc[2].ID})
}

func TestSortReports_LocaleCompareOnAllStringFields(t *testing.T) {
	// comparaison locale aussi hors type/reason/description: "alice"
	// précède "Bob", alors qu'un ordre par octets mettrait "Bob" devant
	reports := []Report{
		{ID: "1", SubmittedBy: strPtr("Bob")},
		{ID: "2", SubmittedBy: strPtr("alice")},
	}

	asc := sortReports(reports, "submitted_by", SortAscending)
	assert.Equal(t, "2", asc[0].ID)
	assert.Equal(t, "1", asc[1].ID)
}

func TestSortReports_DoesNotMutateInput(t *testing.T) {
	reports := sampleReports()
	sortReports(reports, "created_at", SortAscending)
	assert.Equal(t, "1", reports[0].ID)
}

func TestPaginate(t *testing.T) {
	reports := make([]Report, 25)
	for i := range reports {
		reports[i] = Report{ID: fmt.Sprintf("%d", i+1)}
	}

	assert.Equal(t, 3, pageCount(len(reports), 10))

	page1 := paginate(reports, 1, 10)
	assert.Len(t, page1, 10)
	assert.Equal(t, "1", page1[0].ID)

	page3 := paginate(reports, 3, 10)
	assert.Len(t, page3, 5)
	assert.Equal(t, "21", page3[0].ID)

	assert.Empty(t, paginate(reports, 4, 10))
}

func TestPageWindow(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, pageWindow(1, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pageWindow(1, 10))
	assert.Equal(t, []int{4, 5, 6, 7, 8}, pageWindow(6, 10))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, pageWindow(10, 10))
	assert.Equal(t, []int{1}, pageWindow(1, 1))
}
