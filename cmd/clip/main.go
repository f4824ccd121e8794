// Command clip shares text and files between machines through a running
// dashboard server.
//
// Usage:
//
//	clip send [-server URL] [-t TEXT]... [FILE...]
//	clip get  [-server URL] [-o DIR] CODE
//	clip rm   [-server URL] CODE
package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"dashboard/internal/apiclient"
	"dashboard/internal/composer"
	"dashboard/internal/models"
)

const defaultServer = "http://localhost:3000"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "send":
		err = runSend(ctx, os.Args[2:])
	case "get":
		err = runGet(ctx, os.Args[2:])
	case "rm":
		err = runRm(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "clip:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: clip send [-server URL] [-t TEXT]... [FILE...]")
	fmt.Fprintln(os.Stderr, "       clip get  [-server URL] [-o DIR] CODE")
	fmt.Fprintln(os.Stderr, "       clip rm   [-server URL] CODE")
}

// textFlags collects repeated -t flags.
type textFlags []string

func (t *textFlags) String() string { return fmt.Sprint(*t) }

func (t *textFlags) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func runSend(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	server := fs.String("server", defaultServer, "dashboard server URL")
	var texts textFlags
	fs.Var(&texts, "t", "text snippet to share (repeatable)")
	fs.Parse(args)

	comp := composer.New(apiclient.New(*server))

	for _, text := range texts {
		if _, err := comp.AddText(text); err != nil {
			fmt.Fprintf(os.Stderr, "clip: skipping empty text\n")
		}
	}

	var files []composer.File
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, composer.File{
			Name: filepath.Base(path),
			Type: mime.TypeByExtension(filepath.Ext(path)),
			Data: data,
		})
	}
	for _, fe := range comp.AddFiles(files) {
		fmt.Fprintf(os.Stderr, "clip: %v\n", fe)
	}

	code, err := comp.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", code)
	fmt.Fprintf(os.Stderr, "shared %d item(s), expires in 24h\n", len(texts)+len(files))
	return nil
}

func runGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	server := fs.String("server", defaultServer, "dashboard server URL")
	outDir := fs.String("o", ".", "directory for downloaded files")
	fs.Parse(args)

	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	share, err := apiclient.New(*server).Retrieve(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	for _, item := range share.Items {
		switch item.Kind {
		case models.KindFile:
			_, data, err := composer.DecodeDataURL(item.Content)
			if err != nil {
				return fmt.Errorf("%s: %w", item.FileName, err)
			}
			dest := filepath.Join(*outDir, filepath.Base(item.FileName))
			if err := os.WriteFile(dest, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", dest, len(data))
		default:
			fmt.Println(item.Content)
		}
	}
	return nil
}

func runRm(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	server := fs.String("server", defaultServer, "dashboard server URL")
	fs.Parse(args)

	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := apiclient.New(*server).Delete(ctx, fs.Arg(0)); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "share deleted")
	return nil
}
