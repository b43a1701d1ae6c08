// SPDX-License-Identifier: MIT

// Package main is the glassocr command: handwritten digit classification
// with a single-layer convolutional network and pre-trained weights.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		stop()
		log.Fatal(err)
	}
}
