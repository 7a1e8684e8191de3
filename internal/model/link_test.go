package model

import "testing"

func TestNewLinkRecord(t *testing.T) {
	rec := NewLinkRecord("Drum Kit", "https://rkns.link/abc12")

	if rec.Name != "Drum Kit" {
		t.Errorf("Name = %q, want %q", rec.Name, "Drum Kit")
	}
	if rec.URL != "https://rkns.link/abc12" {
		t.Errorf("URL = %q, want %q", rec.URL, "https://rkns.link/abc12")
	}
	if rec.DownloadURL != "" {
		t.Errorf("DownloadURL = %q, want empty on a fresh record", rec.DownloadURL)
	}
}

func TestLinkRecord_Resolved(t *testing.T) {
	rec := NewLinkRecord("Drum Kit", "https://rkns.link/abc12")

	if rec.Resolved() {
		t.Error("fresh record should not report resolved")
	}

	rec.DownloadURL = "https://files.example.test/pack.zip"
	if !rec.Resolved() {
		t.Error("record with a download URL should report resolved")
	}
}
