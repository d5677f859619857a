package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"record-reconciler/core/config"
	"record-reconciler/core/database"
	"record-reconciler/core/reconcile"
	"record-reconciler/core/source"
	"record-reconciler/core/storage"

	"gorm.io/gorm"
)

// debug_reconcile traces how individual keys are classified.
//
//	go run ./cmd/debug_reconcile K1 K42
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	var client storage.Client
	if cfg.Storage.Enabled {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			log.Fatal(err)
		}
	}

	var db *gorm.DB
	if cfg.Database.Enabled {
		if db, err = database.Connect(cfg.Database); err != nil {
			log.Fatal(err)
		}
	}

	loader := source.NewLoader(client, cfg.Storage.Bucket, db, cfg.Reconcile.Delimiter)
	ctx := context.Background()

	fmt.Println("=== Snapshot Loading ===")
	newSnap := mustLoad(ctx, loader, source.SideNew, cfg.Source.New, cfg.Reconcile)
	oldSnap := mustLoad(ctx, loader, source.SideOld, cfg.Source.Old, cfg.Reconcile)

	rep, err := reconcile.Reconcile(oldSnap, newSnap, cfg.Reconcile)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\n=== Key Trace ===")
	trace := make(map[string]string, len(os.Args)-1)
	for _, key := range os.Args[1:] {
		trace[key] = classify(rep, key)
		fmt.Printf("%s: %s\n", key, trace[key])
		if c, ok := rep.Corrupted[key]; ok {
			for _, m := range c.Mismatches {
				fmt.Printf("  %s\n", m)
			}
		}
	}

	output := map[string]any{
		"summary":    rep.Summary,
		"old_lines":  oldSnap.Lines,
		"new_lines":  newSnap.Lines,
		"duplicates": map[string][]string{"old": oldSnap.Duplicates, "new": newSnap.Duplicates},
		"ragged":     map[string][]int{"old": oldSnap.Ragged, "new": newSnap.Ragged},
		"trace":      trace,
	}
	if err := writeDebugFile("debug_reconcile.json", output); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nDebug complete. Check debug_reconcile.json for details.")
}

// writeDebugFile saves the trace output as indented JSON.
func writeDebugFile(path string, output map[string]any) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode debug output: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func mustLoad(ctx context.Context, loader *source.Loader, side, location string, cfg reconcile.Config) *reconcile.Snapshot {
	blob, err := loader.Read(ctx, side, location)
	if err != nil {
		log.Fatal(err)
	}
	snap, err := reconcile.ParseSnapshot(blob, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %s: %d lines, %d records, %d duplicates, %d ragged rows\n",
		side, location, snap.Lines, len(snap.Records), len(snap.Duplicates), len(snap.Ragged))
	return snap
}

func classify(rep *reconcile.Report, key string) string {
	if _, ok := rep.Missing[key]; ok {
		return "missing"
	}
	if _, ok := rep.NewlyCreated[key]; ok {
		return "newly created"
	}
	if _, ok := rep.Corrupted[key]; ok {
		return "corrupted"
	}
	for _, m := range rep.Matched {
		if m == key {
			return "matched"
		}
	}
	return "absent from both snapshots"
}
