package freq

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vseledkin/gopress/common"
	"github.com/vseledkin/gopress/huffman"
)

var FreqCommand *cobra.Command

func init() {

	FreqCommand = &cobra.Command{
		Use:   "freq",
		Short: "print the frequency and code table of stdin",
		Long:  "read text from stdin, build its huffman code and print one row per symbol",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print()
			log.Println("Freq:")
			log.Printf("\tInput: %s\n", "stdin")
			log.Printf("\tOutput: %s\n", "stdout")

			if e := Freq(os.Stdin, os.Stdout); e != nil {
				log.Fatal(e)
			}
		},
	}
}

/*
Freq reads all text from r, builds the huffman code and prints
symbol, count, code length and code to w, most frequent first.
*/
func Freq(r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	var text []byte
	buf := make([]byte, 64*1024)
	for {
		n, e := reader.Read(buf)
		if n > 0 {
			text = append(text, buf[:n]...)
		}
		if e != nil {
			break
		}
	}

	codec := huffman.NewCodec(string(text))
	s := codec.Stats()
	for _, row := range s.Symbols {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", common.EscapeSymbol(row.Symbol), row.Count, row.CodeLen, row.Code)
	}

	log.Printf("%d chars total\n", s.Chars)
	log.Printf("%d distinct symbols\n", s.Alphabet)
	log.Printf("%d huffman bits, %.4f of the 8 bit baseline\n", s.HuffmanBits, s.RatioASCII)
	return nil
}
