package client

import (
	"errors"
	"time"
)

var ErrNotAdmin = errors.New("access denied: admin role required")

var adminPageSizes = []int{5, 10, 25, 50}

// AdminDashboard porte l'état de la vue administrateur: filtres, tri et
// pagination sont appliqués localement sur la liste complète.
type AdminDashboard struct {
	api     *Client
	session *Session

	admin   *User
	reports []Report
	users   []User

	statusFilter string
	typeFilter   string
	sortField    string
	sortDir      SortDirection
	pageSize     int
	page         int
}

func NewAdminDashboard(api *Client, session *Session) *AdminDashboard {
	return &AdminDashboard{
		api:          api,
		session:      session,
		statusFilter: StatusAll,
		typeFilter:   TypeAll,
		sortField:    "created_at",
		sortDir:      SortDescending,
		pageSize:     10,
		page:         1,
	}
}

// Load résout la session courante, vérifie le rôle admin puis charge
// tous les signalements et tous les utilisateurs.
func (d *AdminDashboard) Load() error {
	user, err := d.session.CurrentUser()
	if err != nil {
		return err
	}
	if user.Role != "admin" {
		return ErrNotAdmin
	}
	d.admin = user

	reports, err := d.api.ListReports()
	if err != nil {
		return err
	}
	users, err := d.api.ListUsers()
	if err != nil {
		return err
	}

	d.reports = reports
	d.users = users
	return nil
}

func (d *AdminDashboard) Admin() *User {
	return d.admin
}

func (d *AdminDashboard) Users() []User {
	return d.users
}

func (d *AdminDashboard) SetStatusFilter(status string) {
	d.statusFilter = status
}

func (d *AdminDashboard) SetTypeFilter(reportType string) {
	d.typeFilter = reportType
}

// SortBy bascule la direction quand le même champ est resélectionné;
// un nouveau champ part en descendant.
func (d *AdminDashboard) SortBy(field string) {
	if field == d.sortField {
		if d.sortDir == SortDescending {
			d.sortDir = SortAscending
		} else {
			d.sortDir = SortDescending
		}
		return
	}
	d.sortField = field
	d.sortDir = SortDescending
}

func (d *AdminDashboard) SortState() (string, SortDirection) {
	return d.sortField, d.sortDir
}

// SetPageSize repositionne sur la première page
func (d *AdminDashboard) SetPageSize(size int) {
	for _, allowed := range adminPageSizes {
		if size == allowed {
			d.pageSize = size
			d.page = 1
			return
		}
	}
}

func (d *AdminDashboard) SetPage(page int) {
	if page >= 1 && page <= d.PageCount() {
		d.page = page
	}
}

func (d *AdminDashboard) Page() int {
	return d.page
}

// Filtered applique les deux filtres (ET logique) puis le tri
func (d *AdminDashboard) Filtered() []Report {
	filtered := filterByStatus(d.reports, d.statusFilter)
	filtered = filterByType(filtered, d.typeFilter)
	return sortReports(filtered, d.sortField, d.sortDir)
}

// Visible renvoie la tranche de la page courante
func (d *AdminDashboard) Visible() []Report {
	return paginate(d.Filtered(), d.page, d.pageSize)
}

func (d *AdminDashboard) PageCount() int {
	return pageCount(len(d.Filtered()), d.pageSize)
}

func (d *AdminDashboard) PageNumbers() []int {
	return pageWindow(d.page, d.PageCount())
}

// Resolve appelle l'API puis corrige la copie locale du signalement sans
// recharger toute la liste.
func (d *AdminDashboard) Resolve(reportID string) error {
	if d.admin == nil {
		return ErrNotLoggedIn
	}

	updated, err := d.api.ResolveReport(reportID, d.admin.ID)
	if err != nil {
		return err
	}

	for i := range d.reports {
		if d.reports[i].ID != reportID {
			continue
		}
		adminID := d.admin.ID
		d.reports[i].ResolvedBy = &adminID
		if updated.ResolvedAt != nil {
			d.reports[i].ResolvedAt = updated.ResolvedAt
		} else {
			now := time.Now().UTC().Format(time.RFC3339)
			d.reports[i].ResolvedAt = &now
		}
		resolver := *d.admin
		d.reports[i].Resolver = &resolver
		break
	}
	return nil
}
