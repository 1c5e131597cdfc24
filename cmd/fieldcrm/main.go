// Command fieldcrm is the operational entrypoint for the CRM data layer:
// seeding, import/export, archival, attendance, and metrics inspection.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fieldcrm/internal/blob"
	"fieldcrm/internal/config"
	"fieldcrm/internal/core"
	"fieldcrm/internal/store"
)

const usage = `usage: fieldcrm <command> [flags]

commands:
  seed                 install the bootstrap representative when empty
  export [-o file]     write a full snapshot as JSON (stdout by default)
  import <file>        replace collections from a snapshot document
  clear                remove every stored record
  archive              store the current export in the archive backend
  restore <key>        import an archived export
  checkin [-rep id] [-notes text]
  checkout [-rep id]
  dashboard [-rep id]
  performance [-rep id]
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fieldcrm:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	st, err := store.Open(cfg.StoreDriver(), cfg.SQLitePath, cfg.PostgresDSN, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("closing store", "error", err)
		}
	}()

	svc := core.NewService(st, core.WithRecorder(core.NewExpvarRecorder("fieldcrm_service")))

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "seed":
		rep, seeded := svc.Seed()
		if !seeded {
			fmt.Println("representatives already present, nothing seeded")
			return nil
		}
		fmt.Printf("seeded representative %s (%s)\n", rep.ID, rep.Name)
		return nil

	case "export":
		fs := flag.NewFlagSet("export", flag.ContinueOnError)
		out := fs.String("o", "", "output file (default stdout)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		payload, err := svc.Export()
		if err != nil {
			return err
		}
		if *out == "" {
			_, err = os.Stdout.Write(append(payload, '\n'))
			return err
		}
		return os.WriteFile(*out, payload, 0o644)

	case "import":
		if len(rest) != 1 {
			return fmt.Errorf("import requires exactly one snapshot file")
		}
		payload, err := os.ReadFile(rest[0])
		if err != nil {
			return err
		}
		return svc.Import(payload)

	case "clear":
		return svc.ClearAll()

	case "archive":
		archive, err := blob.Open(context.Background(), cfg.BlobOptions())
		if err != nil {
			return err
		}
		info, err := svc.ArchiveExport(context.Background(), archive)
		if err != nil {
			return err
		}
		fmt.Printf("archived %s (%d bytes)\n", info.Key, info.Size)
		return nil

	case "restore":
		if len(rest) != 1 {
			return fmt.Errorf("restore requires exactly one archive key")
		}
		archive, err := blob.Open(context.Background(), cfg.BlobOptions())
		if err != nil {
			return err
		}
		return svc.RestoreArchive(context.Background(), archive, rest[0])

	case "checkin":
		fs := flag.NewFlagSet("checkin", flag.ContinueOnError)
		rep := fs.String("rep", "", "representative id (default current user)")
		notes := fs.String("notes", "", "attendance notes")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := resolveRep(svc, *rep)
		if err != nil {
			return err
		}
		record, err := svc.CheckIn(id, *notes)
		if err != nil {
			return err
		}
		fmt.Printf("checked in %s at %s\n", record.RepresentativeID, record.CheckIn.Format("15:04:05"))
		return nil

	case "checkout":
		fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
		rep := fs.String("rep", "", "representative id (default current user)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := resolveRep(svc, *rep)
		if err != nil {
			return err
		}
		record, err := svc.CheckOut(id)
		if err != nil {
			return err
		}
		hours := 0.0
		if record.WorkingHours != nil {
			hours = *record.WorkingHours
		}
		fmt.Printf("checked out %s, %.2f hours\n", record.RepresentativeID, hours)
		return nil

	case "dashboard":
		fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
		rep := fs.String("rep", "", "representative id (empty = all)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return printJSON(svc.Dashboard(*rep))

	case "performance":
		fs := flag.NewFlagSet("performance", flag.ContinueOnError)
		rep := fs.String("rep", "", "representative id (empty = all)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return printJSON(svc.Performance(*rep))

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func resolveRep(svc *core.Service, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	rep, ok := svc.CurrentUser()
	if !ok {
		return "", fmt.Errorf("no current user set, pass -rep or run seed")
	}
	return rep.ID, nil
}

func printJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(payload, '\n'))
	return err
}
