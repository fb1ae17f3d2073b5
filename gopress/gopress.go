package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vseledkin/gopress/batch"
	"github.com/vseledkin/gopress/compress"
	"github.com/vseledkin/gopress/freq"
)

func main() {
	log.SetOutput(os.Stderr)

	root := &cobra.Command{
		Use:   "gopress",
		Short: "huffman text compression toolkit",
	}
	root.AddCommand(compress.CompressCommand)
	root.AddCommand(compress.DecompressCommand)
	root.AddCommand(batch.BatchCommand)
	root.AddCommand(freq.FreqCommand)

	if e := root.Execute(); e != nil {
		log.Fatal(e)
	}
}
