package batch

import (
	"io/ioutil"
	"log"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/vseledkin/gopress/huffman"
)

var BatchCommand *cobra.Command

var config, input, output, extension *string

func init() {

	BatchCommand = &cobra.Command{
		Use:   "batch",
		Short: "run the codec over sample files",
		Long:  "encode, decode and verify every sample file, write per-file reports and a compiled csv",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print()
			log.Println("Batch:")
			log.Printf("\tConfig: %s\n", *config)
			log.Printf("\tInput: %s\n", *input)
			log.Printf("\tOutput: %s\n", *output)

			var cfg *Config
			var e error
			switch {
			case len(*config) > 0:
				if cfg, e = LoadConfig(*config); e != nil {
					log.Fatal(e)
				}
			case len(*input) > 0:
				var files []string
				if files, e = Scan(*input, *extension); e != nil {
					log.Fatal(e)
				}
				cfg = &Config{Files: files, Output: *output}
			default:
				cmd.Usage()
				return
			}
			if len(cfg.Output) == 0 {
				cfg.Output = *output
			}
			if _, e = Run(cfg); e != nil {
				log.Fatal(e)
			}
		},
	}

	config = BatchCommand.Flags().StringP("config", "c", "", "yaml run configuration listing sample files")
	input = BatchCommand.Flags().StringP("input", "i", "", "directory containing text files, processed recursively, alternative to --config")
	output = BatchCommand.Flags().StringP("output", "o", "summaries", "directory for reports")
	extension = BatchCommand.Flags().StringP("extension", "e", "txt", "extension of files to process")
}

/*
Config - batch run configuration, a list of sample files and the
report directory.
*/
type Config struct {
	Files  []string `yaml:"files"`
	Output string   `yaml:"output"`
}

/*
LoadConfig reads a yaml run configuration.
*/
func LoadConfig(path string) (*Config, error) {
	data, e := ioutil.ReadFile(path)
	if e != nil {
		return nil, errors.Wrapf(e, "cannot read config %s", path)
	}
	var cfg Config
	if e = yaml.Unmarshal(data, &cfg); e != nil {
		return nil, errors.Wrapf(e, "cannot parse config %s", path)
	}
	return &cfg, nil
}

/*
Scan walks a directory recursively and lists files with the wanted
extension.
*/
func Scan(input, extension string) (files []string, e error) {
	log.Printf("Reading dir %s", input)
	fifos, e := ioutil.ReadDir(input)
	if e != nil {
		return nil, e
	}
	for _, fifo := range fifos {
		fsPath := path.Join(input, fifo.Name())
		if fifo.IsDir() {
			var nested []string
			if nested, e = Scan(fsPath, extension); e != nil {
				return nil, e
			}
			files = append(files, nested...)
		} else if strings.HasSuffix(strings.ToLower(fsPath), "."+extension) {
			files = append(files, fsPath)
		}
	}
	return files, nil
}

/*
Result - outcome of one sample file: codec statistics, runtime and the
round-trip verdict.
*/
type Result struct {
	File      string
	Base      string
	Stats     huffman.Stats
	Runtime   time.Duration
	DecodedOK bool
}

/*
Run processes every configured file and compiles the cross-file csv.
A file that cannot be processed is logged and skipped, the batch
continues; empty files are skipped the same way.
*/
func Run(cfg *Config) ([]Result, error) {
	var results []Result
	for _, file := range cfg.Files {
		result, e := runOne(file, cfg.Output)
		if e != nil {
			log.Printf("skipping %s: %v", file, e)
			continue
		}
		results = append(results, result)
	}
	if len(results) == 0 {
		log.Println("no valid files processed")
		return nil, nil
	}
	csvPath := filepath.Join(cfg.Output, "summary_data.csv")
	if e := writeCSV(csvPath, results); e != nil {
		return nil, e
	}
	log.Printf("compiled %d summaries into %s", len(results), csvPath)
	return results, nil
}

var errEmptyFile = errors.New("empty file")

func runOne(file, outDir string) (Result, error) {
	data, e := ioutil.ReadFile(file)
	if e != nil {
		return Result{}, e
	}
	text := string(data)
	log.Printf("Processing: %s (%d chars)", file, len([]rune(text)))
	if len(strings.TrimSpace(text)) == 0 {
		return Result{}, errEmptyFile
	}

	_time := time.Now()
	codec := huffman.NewCodec(text)
	enc, e := codec.Encode(text)
	if e != nil {
		return Result{}, e
	}
	decoded, e := codec.Decode(enc)
	if e != nil {
		return Result{}, e
	}
	result := Result{
		File:      file,
		Base:      strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
		Stats:     codec.Stats(),
		Runtime:   time.Now().Sub(_time),
		DecodedOK: decoded == text,
	}
	if e = writeReports(outDir, result, enc); e != nil {
		return Result{}, e
	}
	return result, nil
}
