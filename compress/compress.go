package compress

import (
	"bufio"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vseledkin/gopress/huffman"
)

var CompressCommand *cobra.Command
var DecompressCommand *cobra.Command

var input, output *string
var dinput, doutput *string

func init() {

	CompressCommand = &cobra.Command{
		Use:   "compress",
		Short: "compress a text file",
		Long:  "build a huffman code from the file and write a compressed container",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print()
			log.Println("Compress:")
			log.Printf("\tInput: %s\n", *input)
			log.Printf("\tOutput: %s\n", *output)

			if e := Compress(*input, *output); e != nil {
				log.Fatal(e)
			}
		},
	}

	input = CompressCommand.Flags().StringP("input", "i", "", "text file to compress")
	output = CompressCommand.Flags().StringP("output", "o", "", "compressed container to write")
	CompressCommand.MarkFlagRequired("input")
	CompressCommand.MarkFlagRequired("output")

	DecompressCommand = &cobra.Command{
		Use:   "decompress",
		Short: "decompress a container",
		Long:  "rebuild the huffman code from the container header and restore the original text",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print()
			log.Println("Decompress:")
			log.Printf("\tInput: %s\n", *dinput)
			log.Printf("\tOutput: %s\n", *doutput)

			if e := Decompress(*dinput, *doutput); e != nil {
				log.Fatal(e)
			}
		},
	}

	dinput = DecompressCommand.Flags().StringP("input", "i", "", "compressed container to read")
	doutput = DecompressCommand.Flags().StringP("output", "o", "", "text file to restore")
	DecompressCommand.MarkFlagRequired("input")
	DecompressCommand.MarkFlagRequired("output")
}

/*
Compress reads a text file, builds a codec from it and writes the
container: header with the frequency table, then the packed bit
stream. The decompressor rebuilds the identical tree from the table.
*/
func Compress(input, output string) error {
	_time := time.Now()
	data, e := ioutil.ReadFile(input)
	if e != nil {
		return errors.Wrapf(e, "cannot read %s", input)
	}
	text := string(data)

	codec := huffman.NewCodec(text)
	enc, e := codec.Encode(text)
	if e != nil {
		return errors.Wrapf(e, "cannot encode %s", input)
	}

	out, e := os.Create(output)
	if e != nil {
		return errors.Wrapf(e, "cannot create %s", output)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if e = writeHeader(w, codec.Freq, uint64(enc.Len)); e != nil {
		return errors.Wrapf(e, "cannot write header of %s", output)
	}
	if _, e = w.Write(enc.Data); e != nil {
		return errors.Wrapf(e, "cannot write payload of %s", output)
	}
	if e = w.Flush(); e != nil {
		return e
	}

	s := codec.Stats()
	log.Printf("compressed %s: %d chars, %d distinct, %d bits (%.4f of 8 bit baseline) for %v\n",
		input, s.Chars, s.Alphabet, s.HuffmanBits, s.RatioASCII, time.Now().Sub(_time))
	return nil
}

/*
Decompress reads a container, rebuilds the tree from the header
frequency table and decodes the payload back to the original text.
*/
func Decompress(input, output string) error {
	_time := time.Now()
	in, e := os.Open(input)
	if e != nil {
		return errors.Wrapf(e, "cannot read %s", input)
	}
	defer in.Close()

	r := bufio.NewReader(in)
	table, bitLen, e := readHeader(r)
	if e != nil {
		return errors.Wrapf(e, "bad container %s", input)
	}
	payload, e := ioutil.ReadAll(r)
	if e != nil {
		return errors.Wrapf(e, "cannot read payload of %s", input)
	}

	text, e := huffman.Decode(huffman.Bits{Data: payload, Len: int(bitLen)}, huffman.BuildTree(table))
	if e != nil {
		return errors.Wrapf(e, "cannot decode %s", input)
	}

	if e = ioutil.WriteFile(output, []byte(text), 0644); e != nil {
		return errors.Wrapf(e, "cannot write %s", output)
	}
	log.Printf("decompressed %s: %d chars for %v\n", input, len([]rune(text)), time.Now().Sub(_time))
	return nil
}
