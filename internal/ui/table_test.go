package ui

import "testing"

func TestTableAlignment(t *testing.T) {
	tbl := NewTable(3)
	tbl.AddRow("users", "table", "2 columns")
	tbl.AddRow("user_privileges", "view", "1 column")

	got := tbl.String()
	want := "users            table  2 columns\n" +
		"user_privileges  view   1 column\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestTableEmptyRendersNothing(t *testing.T) {
	if got := NewTable(2).String(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestTableDropsExtraCells(t *testing.T) {
	tbl := NewTable(1)
	tbl.AddRow("a", "extra")
	if got := tbl.String(); got != "a\n" {
		t.Errorf("got %q", got)
	}
}
