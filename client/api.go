// Package client embarque la logique des vues du tableau de bord ServiHub:
// connexion, vue administrateur et vue utilisateur. Les identifiants reçus de
// l'API sont des chaînes opaques et ne sont jamais manipulés comme nombres.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// User tel que renvoyé par l'API, identifiant sérialisé en chaîne
type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  string  `json:"role"`
}

// Report tel que renvoyé par l'API, identifiants sérialisés en chaînes
type Report struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	TargetID    string  `json:"target_id"`
	Reason      string  `json:"reason"`
	Description *string `json:"description"`
	SubmittedBy *string `json:"submitted_by"`
	ResolvedBy  *string `json:"resolved_by"`
	ResolvedAt  *string `json:"resolved_at"`
	CreatedAt   string  `json:"created_at"`
	Submitter   *User   `json:"submitter"`
	Resolver    *User   `json:"resolver"`
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// APIError est l'erreur renvoyée quand l'enveloppe porte success=false
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var buf *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(payload)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	if !envelope.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("error decoding response data: %w", err)
		}
	}
	return nil
}

func (c *Client) GetUserByEmail(email string) (*User, error) {
	var user User
	path := "/api/users/getUserByEmail?email=" + url.QueryEscape(email)
	if err := c.do(http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers() ([]User, error) {
	var users []User
	if err := c.do(http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListReports() ([]Report, error) {
	var reports []Report
	if err := c.do(http.MethodGet, "/api/reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

type reportCreatePayload struct {
	Type        string  `json:"type"`
	TargetID    int64   `json:"target_id"`
	Reason      string  `json:"reason"`
	Description *string `json:"description,omitempty"`
	SubmittedBy int64   `json:"submitted_by"`
}

func (c *Client) CreateReport(reportType string, targetID int64, reason string, description *string, submittedBy int64) (*Report, error) {
	payload := reportCreatePayload{
		Type:        reportType,
		TargetID:    targetID,
		Reason:      reason,
		Description: description,
		SubmittedBy: submittedBy,
	}
	var report Report
	if err := c.do(http.MethodPost, "/api/reports", payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ResolveReport marque un signalement comme résolu par l'utilisateur donné.
// L'identifiant est reconverti en entier uniquement pour le transport.
func (c *Client) ResolveReport(reportID, resolvedBy string) (*Report, error) {
	resolverID, err := strconv.ParseInt(resolvedBy, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid resolver id: %w", err)
	}
	body := map[string]int64{"resolved_by": resolverID}
	var report Report
	if err := c.do(http.MethodPatch, "/api/reports/"+url.PathEscape(reportID), body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) DeleteReport(reportID string) error {
	return c.do(http.MethodDelete, "/api/reports/"+url.PathEscape(reportID), nil, nil)
}
