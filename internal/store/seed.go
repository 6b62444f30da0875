package store

import (
	"github.com/google/uuid"

	"github.com/rvale/lazygrid/internal/models"
)

// Seed populates an empty workspace with a small demo table and scenario
// list so the UI has something to browse on first run.
func (s *Store) Seed() error {
	table := &models.Table{
		Name: "My Table",
		Columns: []models.Column{
			{Name: "name", Type: models.TypeText},
			{Name: "status", Type: models.TypeText},
			{Name: "price", Type: models.TypeNumber},
			{Name: "in_stock", Type: models.TypeBoolean},
			{Name: "updated", Type: models.TypeDate},
		},
	}

	demo := []map[string]any{
		{"name": "Widget", "status": "active", "price": float64(9.99), "in_stock": true, "updated": "2025-03-14"},
		{"name": "Gadget", "status": "active", "price": float64(24.5), "in_stock": false, "updated": "2025-05-02"},
		{"name": "Sprocket", "status": "retired", "price": float64(3), "in_stock": true, "updated": "2024-11-20"},
		{"name": "Doohickey", "status": "", "price": nil, "in_stock": true, "updated": "2025-01-08"},
		{"name": "Gizmo", "status": "draft", "price": float64(120), "in_stock": false, "updated": "2025-06-30"},
	}
	for _, data := range demo {
		table.Rows = append(table.Rows, models.Row{ID: uuid.NewString(), Data: data})
	}

	if err := s.SaveTable(table); err != nil {
		return err
	}

	scenarios := []models.Scenario{
		{Name: "login works", Tags: []string{"smoke", "ui"}},
		{Name: "login fails with bad password", Tags: []string{"ui", "negative"}},
		{Name: "checkout totals add up", Tags: []string{"smoke", "api"}},
		{Name: "export report as csv", Tags: []string{"api", "slow"}},
		{Name: "search finds archived items", Tags: []string{"ui", "flaky"}},
	}
	for _, sc := range scenarios {
		if err := s.SaveScenario(sc); err != nil {
			return err
		}
	}
	return nil
}
