package main

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/nicored/csv-records/csv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	envLogLevel  = "CSV_RECORDS_LOG_LEVEL"
	envDelimiter = "CSV_RECORDS_DELIMITER"
)

type Config struct {
	Header             bool                 `yaml:"header"`
	IncludeEmptyValues bool                 `yaml:"includeEmptyValues"`
	Delimiter          string               `yaml:"delimiter"`
	JsConverters       []string             `yaml:"jsConverters"`
	JsParsers          []string             `yaml:"jsParsers"`
	Cols               []*csv.ColConf       `yaml:"cols"`
	Operations         []*csv.OperationConf `yaml:"operations"`
}

type Data struct {
	Config   *Config
	Registry *csv.Registry
	Columns  []csv.ColumnInput

	configFile string
	inputFile  string
}

func NewData(configFile string, inputFile string) (data *Data, err error) {
	data = &Data{
		Registry:   csv.NewRegistry(),
		configFile: configFile,
		inputFile:  inputFile,
	}

	if err = data.parseConfig(); err != nil {
		return nil, err
	}

	return data, nil
}

// Decode reads the input as csv and writes the decoded records as yaml to w
func (d *Data) Decode(w io.Writer) error {
	content, err := readInput(d.inputFile)
	if err != nil {
		return err
	}

	records, err := csv.Decode(string(content), d.Columns, csv.DecodeOptions{
		IncludeHeader:      d.Config.Header,
		IncludeEmptyValues: d.Config.IncludeEmptyValues,
		Delimiter:          d.Config.Delimiter,
	})
	if err != nil {
		return errors.Wrapf(err, "error decoding '%s'", d.inputFile)
	}

	logrus.WithField("records", len(records)).Debug("decoded")

	records, err = d.Registry.RunOperations(records, d.Config.Operations)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

// Encode reads the input as a yaml list of records and writes them as csv to w
func (d *Data) Encode(w io.Writer) error {
	content, err := readInput(d.inputFile)
	if err != nil {
		return err
	}

	var records []*csv.Record
	if err = yaml.Unmarshal(content, &records); err != nil {
		return errors.Wrapf(err, "error reading records from '%s'", d.inputFile)
	}

	records, err = d.Registry.RunOperations(records, d.Config.Operations)
	if err != nil {
		return err
	}

	text, err := csv.Encode(records, d.Columns, csv.EncodeOptions{
		IncludeHeader: d.Config.Header,
		Delimiter:     d.Config.Delimiter,
	})
	if err != nil {
		return errors.Wrapf(err, "error encoding '%s'", d.inputFile)
	}

	logrus.WithField("records", len(records)).Debug("encoded")

	_, err = io.WriteString(w, text+"\n")
	return err
}

func (d *Data) parseConfig() error {
	content, err := ioutil.ReadFile(d.configFile)
	if err != nil {
		return err
	}

	conf := &Config{}
	err = yaml.Unmarshal(content, conf)
	if err != nil {
		return errors.Wrapf(err, "error parsing '%s'", d.configFile)
	}

	if conf.Delimiter == "" {
		conf.Delimiter = os.Getenv(envDelimiter)
	}

	d.Config = conf

	if err = d.importJsFuncs(); err != nil {
		return err
	}

	return d.parseColDefs()
}

func (d *Data) importJsFuncs() error {
	for _, jsFilepath := range d.Config.JsConverters {
		conv, err := csv.NewJSConverter(jsFilepath)
		if err != nil {
			return errors.Wrapf(err, "error loading converter '%s'", jsFilepath)
		}

		if err = d.Registry.AddConverters(conv); err != nil {
			return err
		}

		logrus.WithField("name", conv.Name).Debug("js converter loaded")
	}

	for _, jsFilepath := range d.Config.JsParsers {
		parser, err := csv.NewJSParser(jsFilepath)
		if err != nil {
			return errors.Wrapf(err, "error loading parser '%s'", jsFilepath)
		}

		if err = d.Registry.AddParsers(parser); err != nil {
			return err
		}

		logrus.WithField("name", parser.Name).Debug("js parser loaded")
	}

	return nil
}

func (d *Data) parseColDefs() (err error) {
	d.Columns, err = csv.Columns(d.Registry, d.Config.Cols)
	if err != nil {
		return err
	}

	logrus.WithField("cols", len(d.Columns)).Debug("columns loaded")
	return nil
}

// readInput reads a whole input file, decompressing .gz files and
// dropping a UTF-8 byte order mark
func readInput(filePath string) ([]byte, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(filePath, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "error opening gzip '%s'", filePath)
		}
		defer zr.Close()
		r = zr
	}

	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return bytes.TrimPrefix(content, []byte{0xef, 0xbb, 0xbf}), nil
}
