package probe

import "testing"

func TestDefaultCatalog(t *testing.T) {
	want := []CatalogEntry{
		{22, "SSH"},
		{23, "Telnet"},
		{25, "SMTP"},
		{53, "DNS"},
		{80, "HTTP"},
		{110, "POP3"},
		{143, "IMAP"},
		{443, "HTTPS"},
		{3306, "MySQL"},
		{5432, "PostgreSQL"},
		{6379, "Redis"},
		{3389, "RDP"},
		{27017, "MongoDB"},
	}

	got := DefaultCatalog()
	if len(got) != 13 {
		t.Fatalf("Expected 13 catalog entries, got %d", len(got))
	}
	for i, entry := range got {
		if entry != want[i] {
			t.Errorf("Entry %d = %+v, want %+v", i, entry, want[i])
		}
	}

	// 端口不得重复
	seen := make(map[int]bool)
	for _, entry := range got {
		if seen[entry.Port] {
			t.Errorf("Duplicate port %d in catalog", entry.Port)
		}
		seen[entry.Port] = true
	}
}

func TestDefaultCatalogReturnsCopy(t *testing.T) {
	first := DefaultCatalog()
	first[0].Service = "MUTATED"
	first[0].Port = 1

	second := DefaultCatalog()
	if second[0].Port != 22 || second[0].Service != "SSH" {
		t.Errorf("Catalog mutated through returned slice: %+v", second[0])
	}
}
