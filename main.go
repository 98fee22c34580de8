package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := loadConfig()

	db, err := openDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	store := newRecordStore(db)
	syn := &syncer{
		store:    store,
		resolver: newDNSResolver(cfg.ResolverAddr, cfg.ResolverTimeout),
		act: &execActivator{
			checkconf:  cfg.CheckconfCmd,
			restartCmd: cfg.RestartCmd,
			service:    cfg.Service,
		},
		zone:     cfg.LocalZone,
		confPath: cfg.ConfPath,
	}

	srv, err := newServer(cfg, store, syn)
	if err != nil {
		log.Fatalf("init server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("http listening on %s", cfg.HTTPListen)
	if err := srv.runHTTP(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server: %v", err)
	}
}

func newServer(cfg config, store *recordStore, syn *syncer) (*server, error) {
	index, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, err
	}
	edit, err := template.New("edit").Parse(editHTML)
	if err != nil {
		return nil, err
	}

	return &server{
		cfg:    cfg,
		store:  store,
		syncer: syn,
		index:  index,
		edit:   edit,
		start:  time.Now().UTC(),
	}, nil
}
