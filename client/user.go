package client

import (
	"errors"
	"strconv"
	"time"
)

const noticeDuration = 4 * time.Second

var ErrMissingFields = errors.New("type, target_id and reason are required")

// ReportForm porte les champs du formulaire de soumission tels que saisis
type ReportForm struct {
	Type        string
	TargetID    string
	Reason      string
	Description string
}

// UserDashboard porte l'état de la vue utilisateur: soumission de
// signalements et liste filtrée de ses propres signalements.
type UserDashboard struct {
	api     *Client
	session *Session

	user    *User
	reports []Report

	Form        ReportForm
	notice      string
	noticeUntil time.Time

	statusFilter string
	sortField    string
	sortDir      SortDirection
}

func NewUserDashboard(api *Client, session *Session) *UserDashboard {
	return &UserDashboard{
		api:          api,
		session:      session,
		statusFilter: StatusAll,
		sortField:    "created_at",
		sortDir:      SortDescending,
	}
}

func (d *UserDashboard) Load() error {
	user, err := d.session.CurrentUser()
	if err != nil {
		return err
	}
	d.user = user
	return d.refresh()
}

func (d *UserDashboard) refresh() error {
	reports, err := d.api.ListReports()
	if err != nil {
		return err
	}
	d.reports = reports
	return nil
}

func (d *UserDashboard) User() *User {
	return d.user
}

// SubmitReport valide le formulaire, convertit les identifiants en entiers
// pour le transport, puis vide le formulaire, arme le message de succès
// (visible 4 secondes) et recharge la liste complète.
func (d *UserDashboard) SubmitReport() error {
	if d.user == nil {
		return ErrNotLoggedIn
	}
	if d.Form.Type == "" || d.Form.TargetID == "" || d.Form.Reason == "" {
		return ErrMissingFields
	}

	targetID, err := strconv.ParseInt(d.Form.TargetID, 10, 64)
	if err != nil {
		return errors.New("target_id must be numeric")
	}
	userID, err := strconv.ParseInt(d.user.ID, 10, 64)
	if err != nil {
		return errors.New("invalid user id")
	}

	var description *string
	if d.Form.Description != "" {
		desc := d.Form.Description
		description = &desc
	}

	if _, err := d.api.CreateReport(d.Form.Type, targetID, d.Form.Reason, description, userID); err != nil {
		return err
	}

	d.Form = ReportForm{}
	d.notice = "Report submitted successfully"
	d.noticeUntil = time.Now().Add(noticeDuration)

	return d.refresh()
}

// Notice renvoie le message de succès tant qu'il est encore visible
func (d *UserDashboard) Notice() string {
	if time.Now().Before(d.noticeUntil) {
		return d.notice
	}
	return ""
}

func (d *UserDashboard) SetStatusFilter(status string) {
	d.statusFilter = status
}

// SortBy repart en descendant dès que le champ change
func (d *UserDashboard) SortBy(field string) {
	if field != d.sortField {
		d.sortField = field
		d.sortDir = SortDescending
	}
}

func (d *UserDashboard) ToggleDirection() {
	if d.sortDir == SortDescending {
		d.sortDir = SortAscending
	} else {
		d.sortDir = SortDescending
	}
}

func (d *UserDashboard) SortState() (string, SortDirection) {
	return d.sortField, d.sortDir
}

// MyReports filtre la liste complète sur les signalements soumis par
// l'utilisateur courant, puis applique le filtre de statut et le tri.
func (d *UserDashboard) MyReports() []Report {
	if d.user == nil {
		return nil
	}
	own := make([]Report, 0, len(d.reports))
	for _, r := range d.reports {
		if r.SubmittedBy != nil && *r.SubmittedBy == d.user.ID {
			own = append(own, r)
		}
	}
	own = filterByStatus(own, d.statusFilter)
	return sortReports(own, d.sortField, d.sortDir)
}
