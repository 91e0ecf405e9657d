/*
 * main.go, part of drawrdf.
 *
 * Copyright 2024 The drawrdf Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command drawrdf draws radial distribution functions and coordination
// numbers from the XVG files written by gmx rdf.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/rmera/drawrdf/session"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("drawrdf: ")
	cfg, err := session.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	//The default SIGINT handling ends the program even while
	//it waits for input.
	ctx := context.Background()

	logger := log.New(os.Stderr, "drawrdf: ", 0)
	d, closeDisplay := newDisplayer(cfg)
	S := session.New(cfg, os.Stdin, os.Stdout, logger, d)
	err = S.Run(ctx)
	if cerr := closeDisplay(); cerr != nil {
		logger.Printf("closing the display: %v", cerr)
	}
	if err != nil {
		logger.Fatalf("Error: %v", err)
	}
}
