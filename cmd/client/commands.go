// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/go-animal-registry/internal/adapter"
	"github.com/MKhiriev/go-animal-registry/models"
	"github.com/atotto/clipboard"
)

// copyToClipboard and warnOut are swapped out in tests.
var (
	copyToClipboard           = clipboard.WriteAll
	warnOut         io.Writer = os.Stderr
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errWrongArgs      = errors.New("wrong number of arguments")
	errInvalidID      = errors.New("animal id must be an integer")
)

// run executes a single command against registry and prints its result to out.
func run(ctx context.Context, registry adapter.RegistryAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errNoCommand
	}

	command, args := args[0], args[1:]

	switch command {
	case "version":
		version, err := registry.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, version)
		return err

	case "signup":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("%w: signup <email> <password> [name]", errWrongArgs)
		}
		req := models.SignupRequest{Email: args[0], Password: args[1]}
		if len(args) == 3 {
			req.Name = &args[2]
		}
		user, err := registry.Signup(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(out, user)

	case "login":
		fs := flag.NewFlagSet(command, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		copyToken := fs.Bool("copy", false, "also copy the token to the clipboard")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%s: %w", command, err)
		}
		if fs.NArg() != 2 {
			return fmt.Errorf("%w: login [-copy] <email> <password>", errWrongArgs)
		}
		token, err := registry.Login(ctx, models.LoginRequest{Email: fs.Arg(0), Password: fs.Arg(1)})
		if err != nil {
			return err
		}
		if *copyToken {
			// a missing clipboard (no display, no xclip) must not lose the token
			if err := copyToClipboard(token); err != nil {
				fmt.Fprintf(warnOut, "warning: token not copied to clipboard: %v\n", err)
			}
		}
		_, err = fmt.Fprintln(out, token)
		return err

	case "list":
		animals, err := registry.ListAnimals(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, animals)

	case "get", "delete":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s <id>", errWrongArgs, command)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var animal models.Animal
		if command == "get" {
			animal, err = registry.GetAnimal(ctx, id)
		} else {
			animal, err = registry.DeleteAnimal(ctx, id)
		}
		if err != nil {
			return err
		}
		return printJSON(out, animal)

	case "create":
		req, err := parseAnimalFlags(command, args)
		if err != nil {
			return err
		}
		animal, err := registry.CreateAnimal(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(out, animal)

	case "update":
		if len(args) < 1 {
			return fmt.Errorf("%w: update <id> [flags]", errWrongArgs)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req, err := parseAnimalFlags(command, args[1:])
		if err != nil {
			return err
		}
		animal, err := registry.UpdateAnimal(ctx, id, req)
		if err != nil {
			return err
		}
		return printJSON(out, animal)

	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}
	return id, nil
}

// parseAnimalFlags reads -name, -species, -description and -img. Flags that
// are not given stay nil so they are left out of the request body.
func parseAnimalFlags(command string, args []string) (models.AnimalRequest, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var req models.AnimalRequest
	fs.Func("name", "animal name", func(s string) error { req.Name = &s; return nil })
	fs.Func("species", "animal species", func(s string) error { req.Species = &s; return nil })
	fs.Func("description", "free-form description", func(s string) error { req.Description = &s; return nil })
	fs.Func("img", "image URL", func(s string) error { req.ImgURL = &s; return nil })

	if err := fs.Parse(args); err != nil {
		return models.AnimalRequest{}, fmt.Errorf("%s: %w", command, err)
	}
	if fs.NArg() > 0 {
		return models.AnimalRequest{}, fmt.Errorf("%w: unexpected %v", errWrongArgs, fs.Args())
	}

	return req, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
