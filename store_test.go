package main

import (
	"errors"
	"testing"
)

func TestStoreCreateRejectsDuplicateAIP(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.create(record{Domain: "web.example.com", Type: typeA, Value: "203.0.113.5", TTL: 300}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := s.create(record{Domain: "other.example.com", Type: typeA, Value: "203.0.113.5", TTL: 300})
	if !errors.Is(err, errDuplicateIP) {
		t.Fatalf("expected errDuplicateIP, got %v", err)
	}

	records, err := s.list()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("store should be unchanged after rejected create, got %d records", len(records))
	}
}

func TestStoreUpdateDuplicateIPExcludesSelf(t *testing.T) {
	s := newTestStore(t)

	id, err := s.create(record{Domain: "web.example.com", Type: typeA, Value: "203.0.113.5", TTL: 300})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.create(record{Domain: "db.example.com", Type: typeA, Value: "203.0.113.6", TTL: 300}); err != nil {
		t.Fatalf("second create: %v", err)
	}

	// Keeping its own IP must not count as a duplicate.
	err = s.update(record{ID: id, Domain: "web.example.com", Type: typeA, Value: "203.0.113.5", TTL: 600})
	if err != nil {
		t.Fatalf("update keeping own IP: %v", err)
	}

	// Moving onto another record's IP must.
	err = s.update(record{ID: id, Domain: "web.example.com", Type: typeA, Value: "203.0.113.6", TTL: 600})
	if !errors.Is(err, errDuplicateIP) {
		t.Fatalf("expected errDuplicateIP, got %v", err)
	}
}

func TestStoreUpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.update(record{ID: 42, Domain: "web.example.com", Type: typeA, Value: "203.0.113.5", TTL: 300})
	if !errors.Is(err, errRecordNotFound) {
		t.Fatalf("expected errRecordNotFound, got %v", err)
	}
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	id, err := s.create(record{Domain: "web.example.com", Type: typeA, Value: "203.0.113.5", TTL: 300})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.delete(id); err != nil {
		t.Fatalf("repeated delete should not fail: %v", err)
	}
	if err := s.delete(999); err != nil {
		t.Fatalf("deleting unknown id should not fail: %v", err)
	}
}

func TestStoreSetResolvedIPRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.create(record{Domain: "alias.example.com", Type: typeCNAME, Value: "web.example.com", TTL: 300})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.setResolvedIP(id, "203.0.113.5"); err != nil {
		t.Fatalf("setResolvedIP: %v", err)
	}
	got, err := s.get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ResolvedIP != "203.0.113.5" {
		t.Fatalf("unexpected resolved IP: %q", got.ResolvedIP)
	}

	// Clearing stores NULL, read back as empty.
	if err := s.setResolvedIP(id, ""); err != nil {
		t.Fatalf("clear resolved IP: %v", err)
	}
	got, err = s.get(id)
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if got.ResolvedIP != "" {
		t.Fatalf("expected empty resolved IP, got %q", got.ResolvedIP)
	}
}

func TestStoreListPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	domains := []string{"c.example.com", "a.example.com", "b.example.com"}
	ips := []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"}
	for i, d := range domains {
		if _, err := s.create(record{Domain: d, Type: typeA, Value: ips[i], TTL: 60}); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}

	records, err := s.list()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, d := range domains {
		if records[i].Domain != d {
			t.Fatalf("position %d: expected %s, got %s", i, d, records[i].Domain)
		}
	}
}

func TestStoreListCNAMEsFiltersByType(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.create(record{Domain: "web.example.com", Type: typeA, Value: "203.0.113.5", TTL: 60}); err != nil {
		t.Fatalf("create A: %v", err)
	}
	if _, err := s.create(record{Domain: "alias.example.com", Type: typeCNAME, Value: "web.example.com", TTL: 60}); err != nil {
		t.Fatalf("create CNAME: %v", err)
	}

	cnames, err := s.listCNAMEs()
	if err != nil {
		t.Fatalf("listCNAMEs: %v", err)
	}
	if len(cnames) != 1 || cnames[0].Domain != "alias.example.com" {
		t.Fatalf("unexpected CNAME list: %#v", cnames)
	}
}
