package store

import (
	"path/filepath"
	"testing"

	"github.com/rvale/lazygrid/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "workspace.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGetTable(t *testing.T) {
	s := openTestStore(t)

	table := &models.Table{
		Name: "orders",
		Columns: []models.Column{
			{Name: "item", Type: models.TypeText},
			{Name: "qty", Type: models.TypeNumber},
		},
		Rows: []models.Row{
			{Data: map[string]any{"item": "widget", "qty": float64(3)}},
			{Data: map[string]any{"item": "gadget", "qty": nil}},
		},
	}

	if err := s.SaveTable(table); err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	got, err := s.GetTable("orders", 0)
	if err != nil {
		t.Fatalf("GetTable failed: %v", err)
	}

	if len(got.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(got.Columns))
	}
	if got.Columns[0].Name != "item" || got.Columns[0].Type != models.TypeText {
		t.Errorf("unexpected first column: %+v", got.Columns[0])
	}
	if got.Columns[1].Type != models.TypeNumber {
		t.Errorf("expected number type, got %s", got.Columns[1].Type)
	}

	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	if got.Rows[0].Data["item"] != "widget" {
		t.Errorf("expected first row item 'widget', got %v", got.Rows[0].Data["item"])
	}
	if got.Rows[0].Data["qty"] != float64(3) {
		t.Errorf("expected qty 3, got %v (%T)", got.Rows[0].Data["qty"], got.Rows[0].Data["qty"])
	}
	if got.Rows[1].Data["qty"] != nil {
		t.Errorf("expected nil qty preserved, got %v", got.Rows[1].Data["qty"])
	}
	if got.Rows[0].ID == "" {
		t.Error("expected generated row ID")
	}
}

func TestGetTable_Limit(t *testing.T) {
	s := openTestStore(t)

	table := &models.Table{
		Name:    "big",
		Columns: []models.Column{{Name: "n", Type: models.TypeNumber}},
	}
	for i := 0; i < 10; i++ {
		table.Rows = append(table.Rows, models.Row{Data: map[string]any{"n": float64(i)}})
	}
	if err := s.SaveTable(table); err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	got, err := s.GetTable("big", 4)
	if err != nil {
		t.Fatalf("GetTable failed: %v", err)
	}
	if len(got.Rows) != 4 {
		t.Errorf("expected 4 rows, got %d", len(got.Rows))
	}
	if got.Rows[0].Data["n"] != float64(0) {
		t.Errorf("expected rows in stored order, first was %v", got.Rows[0].Data["n"])
	}
}

func TestGetTable_Unknown(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetTable("nope", 0); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestScenarios(t *testing.T) {
	s := openTestStore(t)

	sc := models.Scenario{Name: "login works", Tags: []string{"smoke", "ui"}}
	if err := s.SaveScenario(sc); err != nil {
		t.Fatalf("SaveScenario failed: %v", err)
	}

	list, err := s.Scenarios()
	if err != nil {
		t.Fatalf("Scenarios failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(list))
	}
	if list[0].Name != "login works" {
		t.Errorf("unexpected name %q", list[0].Name)
	}
	if len(list[0].Tags) != 2 || list[0].Tags[0] != "smoke" {
		t.Errorf("unexpected tags %v", list[0].Tags)
	}
}

func TestSeed(t *testing.T) {
	s := openTestStore(t)

	empty, err := s.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if !empty {
		t.Fatal("expected fresh workspace to be empty")
	}

	if err := s.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	empty, err = s.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if empty {
		t.Error("expected seeded workspace to have tables")
	}

	names, err := s.TableNames()
	if err != nil {
		t.Fatalf("TableNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "My Table" {
		t.Errorf("unexpected table names %v", names)
	}

	scenarios, err := s.Scenarios()
	if err != nil {
		t.Fatalf("Scenarios failed: %v", err)
	}
	if len(scenarios) == 0 {
		t.Error("expected seeded scenarios")
	}
}
