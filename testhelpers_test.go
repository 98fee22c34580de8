package main

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

type fakeResolver struct {
	ips map[string]string
}

func (f *fakeResolver) resolve(_ context.Context, target string) (string, error) {
	if ip, ok := f.ips[target]; ok {
		return ip, nil
	}
	return "", fmt.Errorf("%w %s: no A answer", errUnresolvable, target)
}

type fakeActivator struct {
	validateErr error
	restartErr  error
	validated   int
	restarted   int
}

func (f *fakeActivator) validate(context.Context) error {
	f.validated++
	return f.validateErr
}

func (f *fakeActivator) restart(context.Context) error {
	f.restarted++
	return f.restartErr
}

func newTestStore(t *testing.T) *recordStore {
	t.Helper()

	db, err := openDatabase(filepath.Join(t.TempDir(), "records-test.db"))
	if err != nil {
		t.Fatalf("openDatabase: %v", err)
	}
	return newRecordStore(db)
}

func newTestServer(t *testing.T) (*server, *fakeResolver, *fakeActivator) {
	t.Helper()

	dir := t.TempDir()
	db, err := openDatabase(filepath.Join(dir, "records-test.db"))
	if err != nil {
		t.Fatalf("openDatabase: %v", err)
	}

	store := newRecordStore(db)
	res := &fakeResolver{ips: map[string]string{}}
	act := &fakeActivator{}
	syn := &syncer{
		store:    store,
		resolver: res,
		act:      act,
		zone:     "example.com",
		confPath: filepath.Join(dir, "local-data.conf"),
	}

	srv, err := newServer(config{
		LocalZone:  "example.com",
		DefaultTTL: 300,
		AdminUser:  "admin",
	}, store, syn)
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}

	return srv, res, act
}
