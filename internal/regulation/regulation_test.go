package regulation

import "testing"

func TestGet(t *testing.T) {
	ref, ok := Get("gdpr")
	if !ok {
		t.Fatal("Get(\"gdpr\") missing")
	}
	if ref.Title != "GDPR (EU)" {
		t.Errorf("Title = %q", ref.Title)
	}
	if ref.URL == "" || ref.Description == "" {
		t.Error("reference is missing URL or description")
	}

	if _, ok := Get("hipaa"); ok {
		t.Error("Get(\"hipaa\") should miss")
	}
}

func TestList_SortedAndComplete(t *testing.T) {
	refs := List()
	ids := IDs()
	if len(refs) != len(ids) {
		t.Fatalf("List() returned %d refs, IDs() %d", len(refs), len(ids))
	}
	for i, ref := range refs {
		if ref.ID != ids[i] {
			t.Errorf("List()[%d].ID = %q, want %q", i, ref.ID, ids[i])
		}
	}
}
